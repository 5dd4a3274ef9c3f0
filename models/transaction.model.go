package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionCategory defines the category of a transaction
type TransactionCategory string

const (
	TransactionCategorySale    TransactionCategory = "SALE"
	TransactionCategoryExpense TransactionCategory = "EXPENSE"
)

// IsValid reports whether the category is known
func (c TransactionCategory) IsValid() bool {
	return c == TransactionCategorySale || c == TransactionCategoryExpense
}

// TransactionOrigin marks how a transaction was created
type TransactionOrigin string

const (
	TransactionOriginAuto   TransactionOrigin = "AUTO"
	TransactionOriginManual TransactionOrigin = "MANUAL"
)

// ExpenseCatalog lists the fixed subcategories for expense entries
var ExpenseCatalog = []string{
	"Transport",
	"Meals",
	"Office Supplies",
	"Rent",
	"Salaries",
	"Electricity",
	"Water",
	"Internet",
	"Security",
	"Trash",
}

// IsValidExpenseSubcategory reports whether the subcategory is in the expense catalog
func IsValidExpenseSubcategory(sub string) bool {
	for _, item := range ExpenseCatalog {
		if sub == item {
			return true
		}
	}
	return false
}

// Transaction is a financial record. AUTO records are created by the
// payment workflow when an order is paid, carry the order id, and are
// read-only; MANUAL records are user entries and stay editable.
// The unique index on linked_order_id keeps the auto record one-per-order.
type Transaction struct {
	gorm.Model
	ReferenceNo     string              `gorm:"type:varchar(40);uniqueIndex;not null" json:"referenceNo"`
	Category        TransactionCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Subcategory     string              `gorm:"type:varchar(100);not null" json:"subcategory"`
	AmountPrimary   decimal.Decimal     `gorm:"type:decimal(20,4);not null" json:"amountPrimary"`
	AmountSecondary decimal.Decimal     `gorm:"type:decimal(20,8);not null" json:"amountSecondary"`
	Origin          TransactionOrigin   `gorm:"type:varchar(20);not null" json:"origin"`
	LinkedOrderID   *uint               `gorm:"uniqueIndex" json:"linkedOrderId,omitempty"`
	TransactionDate time.Time           `gorm:"not null;index" json:"transactionDate"`
	Notes           string              `gorm:"type:text" json:"notes"`
}

func (Transaction) TableName() string {
	return "transactions"
}
