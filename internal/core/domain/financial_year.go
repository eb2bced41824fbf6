package domain

import "time"

// FinancialYear is an accounting period that can be closed exactly once.
type FinancialYear struct {
	ID              int64                 `json:"id"`
	Name            string                `json:"name"`
	StartDate       time.Time             `json:"startDate"`
	EndDate         *time.Time            `json:"endDate,omitempty"`
	IsClosed        bool                  `json:"isClosed"`
	ClosedAt        *time.Time            `json:"closedAt,omitempty"`
	OpeningBalances map[AccountCode]int64 `json:"openingBalances,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// Covers reports whether t falls inside the year.
func (fy FinancialYear) Covers(t time.Time) bool {
	if t.Before(fy.StartDate) {
		return false
	}
	return fy.EndDate == nil || !t.After(*fy.EndDate)
}
