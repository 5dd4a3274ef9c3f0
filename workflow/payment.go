package workflow

import (
	"biztrack/config"
	"biztrack/models"
	"biztrack/utils"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// markOrderPaid records the sale for a paid order. Called from
// UpdateOrder inside an open transaction; any failure here aborts the
// whole update, so the status flip is never persisted without its sale.
//
// Exactly one AUTO transaction exists per order: a re-entry finds the
// existing record and returns it unchanged, and the unique index on
// linked_order_id serializes concurrent attempts.
func markOrderPaid(tx *gorm.DB, converter *utils.CurrencyConverter, order *models.Order) (*models.Transaction, error) {
	var existing models.Transaction
	err := tx.Where("linked_order_id = ?", order.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: fetch linked transaction: %v", models.ErrPersistence, err)
	}

	amountSecondary, err := converter.ToSecondary(order.TotalPrice)
	if err != nil {
		return nil, err
	}

	orderID := order.ID
	sale := models.Transaction{
		ReferenceNo:     uuid.NewString(),
		Category:        models.TransactionCategorySale,
		Subcategory:     string(order.ItemType),
		AmountPrimary:   order.TotalPrice,
		AmountSecondary: amountSecondary,
		Origin:          models.TransactionOriginAuto,
		LinkedOrderID:   &orderID,
		TransactionDate: time.Now(),
		Notes:           fmt.Sprintf("Auto-generated from Order #%d - %s", order.ID, order.CustomerName),
	}

	if err := tx.Create(&sale).Error; err != nil {
		config.LogError(config.GetLogger(), "payment.go", "markOrderPaid", "CreateSaleTransaction", order.ID, err)
		return nil, fmt.Errorf("%w: create sale transaction: %v", models.ErrPersistence, err)
	}
	return &sale, nil
}
