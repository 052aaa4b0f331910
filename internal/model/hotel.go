package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hotel is a partner hotel. Orders are attributed to hotels by code for
// commission reporting.
type Hotel struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	HotelCode      string          `json:"hotel_code" gorm:"uniqueIndex;size:64;not null"`
	HotelName      string          `json:"hotel_name" gorm:"size:255;not null"`
	CommissionRate decimal.Decimal `json:"commission_rate" gorm:"type:decimal(5,2);not null;default:10.00"`
	CreatedAt      time.Time       `json:"created_at"`
}
