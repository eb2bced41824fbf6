package utils

import (
	"github.com/shopspring/decimal"
)

// MinorToMajor converts an integer amount of minor currency units to major units.
// Example: 2500 with 2 decimals returns 25.00
func MinorToMajor(minor int64, decimals int32) decimal.Decimal {
	return decimal.New(minor, -decimals)
}

// FormatMinor renders minor units with exactly the given number of fraction digits.
// Example: 2500 with 2 decimals returns "25.00", with 0 decimals "2500"
func FormatMinor(minor int64, decimals int32) string {
	return MinorToMajor(minor, decimals).StringFixed(decimals)
}
