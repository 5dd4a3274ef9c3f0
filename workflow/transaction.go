package workflow

import (
	"biztrack/models"
	"biztrack/utils"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewTransaction carries the fields of a manual transaction create
// request. Category defaults to EXPENSE when empty.
type NewTransaction struct {
	Category        models.TransactionCategory
	Subcategory     string
	AmountPrimary   decimal.Decimal
	TransactionDate *time.Time
	Notes           string
}

// TransactionUpdate carries a partial manual-transaction update
type TransactionUpdate struct {
	Subcategory     *string
	AmountPrimary   *decimal.Decimal
	TransactionDate *time.Time
	Notes           *string
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	Category *models.TransactionCategory
	From     *time.Time
	To       *time.Time
}

func validateSubcategory(category models.TransactionCategory, sub string) error {
	switch category {
	case models.TransactionCategorySale:
		if !models.ItemType(sub).IsValid() {
			return fmt.Errorf("%w: subcategory %q is not in the item catalog", models.ErrInvalidInput, sub)
		}
	case models.TransactionCategoryExpense:
		if !models.IsValidExpenseSubcategory(sub) {
			return fmt.Errorf("%w: subcategory %q is not in the expense catalog", models.ErrInvalidInput, sub)
		}
	}
	return nil
}

// CreateManualTransaction validates and stores a user-entered
// transaction. Expenses use the fixed expense catalog; manual sales
// (income not tied to an order) use the item catalog.
func CreateManualTransaction(db *gorm.DB, converter *utils.CurrencyConverter, input NewTransaction) (*models.Transaction, error) {
	category := input.Category
	if category == "" {
		category = models.TransactionCategoryExpense
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrInvalidInput, input.Category)
	}
	if !input.AmountPrimary.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", models.ErrInvalidInput)
	}
	if err := validateSubcategory(category, input.Subcategory); err != nil {
		return nil, err
	}

	amountSecondary, err := converter.ToSecondary(input.AmountPrimary)
	if err != nil {
		return nil, err
	}

	transactionDate := time.Now()
	if input.TransactionDate != nil {
		transactionDate = *input.TransactionDate
	}

	transaction := models.Transaction{
		ReferenceNo:     uuid.NewString(),
		Category:        category,
		Subcategory:     input.Subcategory,
		AmountPrimary:   input.AmountPrimary,
		AmountSecondary: amountSecondary,
		Origin:          models.TransactionOriginManual,
		TransactionDate: transactionDate,
		Notes:           input.Notes,
	}

	if err := db.Create(&transaction).Error; err != nil {
		return nil, fmt.Errorf("%w: create transaction: %v", models.ErrPersistence, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to a manual transaction.
// Auto-generated records are immutable to preserve audit integrity.
func UpdateTransaction(db *gorm.DB, converter *utils.CurrencyConverter, id uint, input TransactionUpdate) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %d", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: fetch transaction: %v", models.ErrPersistence, err)
	}

	if transaction.Origin == models.TransactionOriginAuto {
		return nil, fmt.Errorf("%w: auto-generated transactions are read-only", models.ErrForbidden)
	}

	if input.Subcategory != nil {
		if err := validateSubcategory(transaction.Category, *input.Subcategory); err != nil {
			return nil, err
		}
		transaction.Subcategory = *input.Subcategory
	}
	if input.AmountPrimary != nil {
		if !input.AmountPrimary.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be greater than 0", models.ErrInvalidInput)
		}
		amountSecondary, err := converter.ToSecondary(*input.AmountPrimary)
		if err != nil {
			return nil, err
		}
		transaction.AmountPrimary = *input.AmountPrimary
		transaction.AmountSecondary = amountSecondary
	}
	if input.TransactionDate != nil {
		transaction.TransactionDate = *input.TransactionDate
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	if err := db.Save(&transaction).Error; err != nil {
		return nil, fmt.Errorf("%w: update transaction: %v", models.ErrPersistence, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes a manual transaction. An auto-generated
// record still linked to an existing order is deleted only through the
// order-deletion cascade, never directly.
func DeleteTransaction(db *gorm.DB, id uint) error {
	var transaction models.Transaction
	if err := db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: transaction %d", models.ErrNotFound, id)
		}
		return fmt.Errorf("%w: fetch transaction: %v", models.ErrPersistence, err)
	}

	if transaction.Origin == models.TransactionOriginAuto && transaction.LinkedOrderID != nil {
		var count int64
		if err := db.Model(&models.Order{}).Where("id = ?", *transaction.LinkedOrderID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: check linked order: %v", models.ErrPersistence, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: auto-generated transactions are deleted via their order", models.ErrForbidden)
		}
	}

	if err := db.Delete(&transaction).Error; err != nil {
		return fmt.Errorf("%w: delete transaction: %v", models.ErrPersistence, err)
	}
	return nil
}

// ListTransactions returns transactions in insertion order, narrowed by the filter
func ListTransactions(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, error) {
	query := db.Model(&models.Transaction{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.From != nil {
		query = query.Where("transaction_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("transaction_date <= ?", *filter.To)
	}

	var transactions []models.Transaction
	if err := query.Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", models.ErrPersistence, err)
	}
	return transactions, nil
}
