package models

import "time"

// Product is a row of the products table.
type Product struct {
	ID        string    `db:"id" gorm:"primaryKey;size:36"`
	Name      string    `db:"name" gorm:"not null"`
	Code      *string   `db:"code" gorm:"uniqueIndex;size:64"`
	Unit      string    `db:"unit" gorm:"size:32"`
	Inventory int64     `db:"inventory" gorm:"not null;default:0"`
	CreatedAt time.Time `db:"created_at" gorm:"not null"`
}

func (Product) TableName() string { return "products" }
