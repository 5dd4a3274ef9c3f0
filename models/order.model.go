package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemType defines the product/service catalog
type ItemType string

const (
	ItemTypePicha    ItemType = "Picha"
	ItemTypeBanner   ItemType = "Banner"
	ItemTypeHolder   ItemType = "Holder"
	ItemTypeNotebook ItemType = "Notebook"
	ItemTypePoster   ItemType = "Poster"
	ItemTypeSticker  ItemType = "Sticker"
	ItemTypeDesign   ItemType = "Design"
)

// ItemCatalog lists every sellable item type
var ItemCatalog = []ItemType{
	ItemTypePicha,
	ItemTypeBanner,
	ItemTypeHolder,
	ItemTypeNotebook,
	ItemTypePoster,
	ItemTypeSticker,
	ItemTypeDesign,
}

// IsValid reports whether the item type is in the catalog
func (t ItemType) IsValid() bool {
	for _, item := range ItemCatalog {
		if t == item {
			return true
		}
	}
	return false
}

// PaymentStatus defines the payment state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// IsValid reports whether the payment status is known
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// DeliveryStatus defines the delivery state of an order
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
)

// IsValid reports whether the delivery status is known
func (s DeliveryStatus) IsValid() bool {
	return s == DeliveryStatusPending || s == DeliveryStatusDelivered
}

// Order is a customer order. TotalPrice is always Quantity x UnitPrice
// in the primary currency; payment starts UNPAID and can only move to PAID.
type Order struct {
	gorm.Model
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customerName"`
	PhoneNumber   string          `gorm:"type:varchar(30)" json:"phoneNumber"`
	ItemType      ItemType        `gorm:"type:varchar(50);not null;index" json:"itemType"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unitPrice"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"totalPrice"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'UNPAID';index" json:"paymentStatus"`

	DeliveryStatus DeliveryStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"deliveryStatus"`
	OrderDate      time.Time      `gorm:"not null" json:"orderDate"`
	Notes          string         `gorm:"type:text" json:"notes"`
}

func (Order) TableName() string {
	return "orders"
}
