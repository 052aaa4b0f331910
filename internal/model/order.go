package model

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next. Only
// pending orders move, and never back to pending.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return s == OrderStatusPending &&
		(next == OrderStatusFulfilled || next == OrderStatusCancelled)
}

// Order is a purchase intent attributed to a partner hotel. Orders are
// created pending, transition at most once, and are never deleted.
type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	ProductID      uint        `json:"product_id" gorm:"not null;index"`
	HotelCode      string      `json:"hotel_code" gorm:"size:64;not null;index"`
	WhatsappNumber *string     `json:"whatsapp_number" gorm:"size:32"`
	Status         OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	MessageText    *string     `json:"message_text" gorm:"type:text"`
	Timestamp      time.Time   `json:"timestamp" gorm:"autoCreateTime"`

	// Relations
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
	Hotel   Hotel   `json:"-" gorm:"foreignKey:HotelCode;references:HotelCode"`
}
