package workflow

import (
	"biztrack/models"
	"biztrack/utils"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewOrder carries the fields of an order create request
type NewOrder struct {
	CustomerName string
	PhoneNumber  string
	ItemType     models.ItemType
	Quantity     int
	UnitPrice    decimal.Decimal
	OrderDate    *time.Time
	Notes        string
}

// OrderUpdate carries a partial order update; nil fields are left unchanged
type OrderUpdate struct {
	CustomerName   *string
	PhoneNumber    *string
	ItemType       *models.ItemType
	Quantity       *int
	UnitPrice      *decimal.Decimal
	PaymentStatus  *models.PaymentStatus
	DeliveryStatus *models.DeliveryStatus
	Notes          *string
}

// OrderFilter narrows order listings; nil fields match everything
type OrderFilter struct {
	PaymentStatus *models.PaymentStatus
	ItemType      *models.ItemType
}

// CreateOrder validates and stores a new order. Payment always starts UNPAID.
func CreateOrder(db *gorm.DB, input NewOrder) (*models.Order, error) {
	if input.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", models.ErrInvalidInput)
	}
	if !input.ItemType.IsValid() {
		return nil, fmt.Errorf("%w: unknown item type %q", models.ErrInvalidInput, input.ItemType)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", models.ErrInvalidInput)
	}
	if input.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", models.ErrInvalidInput)
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := models.Order{
		CustomerName:   input.CustomerName,
		PhoneNumber:    input.PhoneNumber,
		ItemType:       input.ItemType,
		Quantity:       input.Quantity,
		UnitPrice:      input.UnitPrice,
		TotalPrice:     input.UnitPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
		PaymentStatus:  models.PaymentStatusUnpaid,
		DeliveryStatus: models.DeliveryStatusPending,
		OrderDate:      orderDate,
		Notes:          input.Notes,
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("%w: create order: %v", models.ErrPersistence, err)
	}
	return &order, nil
}

// GetOrder fetches a single order by id
func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: fetch order: %v", models.ErrPersistence, err)
	}
	return &order, nil
}

// ListOrders returns orders in insertion order, narrowed by the filter
func ListOrders(db *gorm.DB, filter OrderFilter) ([]models.Order, error) {
	query := db.Model(&models.Order{})
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.ItemType != nil {
		query = query.Where("item_type = ?", *filter.ItemType)
	}

	var orders []models.Order
	if err := query.Order("id ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", models.ErrPersistence, err)
	}
	return orders, nil
}

// UpdateOrder applies a partial update to an order. An UNPAID -> PAID
// status change runs the payment workflow in the same database
// transaction, so the status flip and the auto-generated sale are
// committed together or not at all. The returned transaction is non-nil
// only when the order is (or already was) paid.
func UpdateOrder(db *gorm.DB, converter *utils.CurrencyConverter, id uint, input OrderUpdate) (*models.Order, *models.Transaction, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, nil, fmt.Errorf("%w: begin: %v", models.ErrPersistence, tx.Error)
	}

	var order models.Order
	if err := tx.First(&order, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: order %d", models.ErrNotFound, id)
		}
		return nil, nil, fmt.Errorf("%w: fetch order: %v", models.ErrPersistence, err)
	}

	wasPaid := order.PaymentStatus == models.PaymentStatusPaid
	payNow := false

	if input.PaymentStatus != nil {
		switch {
		case !input.PaymentStatus.IsValid():
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: unknown payment status %q", models.ErrInvalidInput, *input.PaymentStatus)
		case wasPaid && *input.PaymentStatus == models.PaymentStatusUnpaid:
			// A sale record already exists; reversing would orphan it.
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: a paid order cannot be reverted to unpaid", models.ErrInvalidTransition)
		case !wasPaid && *input.PaymentStatus == models.PaymentStatusPaid:
			payNow = true
		}
	}

	// Financial fields are frozen once the sale has been recorded.
	if wasPaid && (input.CustomerName != nil || input.ItemType != nil || input.Quantity != nil || input.UnitPrice != nil) {
		tx.Rollback()
		return nil, nil, fmt.Errorf("%w: financial fields of a paid order cannot be edited", models.ErrForbidden)
	}

	if input.CustomerName != nil {
		if *input.CustomerName == "" {
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: customer name is required", models.ErrInvalidInput)
		}
		order.CustomerName = *input.CustomerName
	}
	if input.PhoneNumber != nil {
		order.PhoneNumber = *input.PhoneNumber
	}
	if input.ItemType != nil {
		if !input.ItemType.IsValid() {
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: unknown item type %q", models.ErrInvalidInput, *input.ItemType)
		}
		order.ItemType = *input.ItemType
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: quantity must be greater than 0", models.ErrInvalidInput)
		}
		order.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: unit price must not be negative", models.ErrInvalidInput)
		}
		order.UnitPrice = *input.UnitPrice
	}
	if input.DeliveryStatus != nil {
		if !input.DeliveryStatus.IsValid() {
			tx.Rollback()
			return nil, nil, fmt.Errorf("%w: unknown delivery status %q", models.ErrInvalidInput, *input.DeliveryStatus)
		}
		order.DeliveryStatus = *input.DeliveryStatus
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	// Keep the invariant: total price always equals quantity x unit price.
	order.TotalPrice = order.UnitPrice.Mul(decimal.NewFromInt(int64(order.Quantity)))

	if payNow {
		order.PaymentStatus = models.PaymentStatusPaid
	}

	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return nil, nil, fmt.Errorf("%w: update order: %v", models.ErrPersistence, err)
	}

	var sale *models.Transaction
	if payNow || wasPaid {
		// Idempotent: re-entry returns the existing sale unchanged.
		var err error
		sale, err = markOrderPaid(tx, converter, &order)
		if err != nil {
			tx.Rollback()
			return nil, nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, fmt.Errorf("%w: commit: %v", models.ErrPersistence, err)
	}
	return &order, sale, nil
}

// DeleteOrder removes an order and cascades to its auto-generated
// transaction in the same database transaction.
func DeleteOrder(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: begin: %v", models.ErrPersistence, tx.Error)
	}

	var order models.Order
	if err := tx.First(&order, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", models.ErrNotFound, id)
		}
		return fmt.Errorf("%w: fetch order: %v", models.ErrPersistence, err)
	}

	if err := tx.Where("linked_order_id = ?", order.ID).Delete(&models.Transaction{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: cascade delete transaction: %v", models.ErrPersistence, err)
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete order: %v", models.ErrPersistence, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: commit: %v", models.ErrPersistence, err)
	}
	return nil
}
