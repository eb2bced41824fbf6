package domain

import "time"

// VerificationCode is a short-lived one-time code issued for a key.
type VerificationCode struct {
	Key       string    `json:"key"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}
