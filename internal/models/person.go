package models

import "time"

// Person is a row of the persons table.
type Person struct {
	ID          string    `db:"id" gorm:"primaryKey;size:36"`
	Name        string    `db:"name" gorm:"not null"`
	NameNorm    string    `db:"name_norm" gorm:"not null;index"`
	Kind        *string   `db:"kind" gorm:"size:32"`
	Mobile      *string   `db:"mobile" gorm:"size:32"`
	Description *string   `db:"description"`
	Code        *string   `db:"code" gorm:"uniqueIndex;size:64"`
	CreatedAt   time.Time `db:"created_at" gorm:"not null"`
}

func (Person) TableName() string { return "persons" }

// PartyRefTotal is the amount one party moved through one kind of document.
type PartyRefTotal struct {
	RefType string `db:"ref_type"`
	Total   int64  `db:"total"`
}
