package workflow

import (
	"biztrack/models"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateManualExpense(t *testing.T) {
	db := newTestDB(t)

	transaction, err := CreateManualTransaction(db, newTestConverter(t), NewTransaction{
		Subcategory:   "Rent",
		AmountPrimary: decimal.NewFromInt(50000),
		Notes:         "August rent",
	})
	require.NoError(t, err)

	// Category defaults to EXPENSE
	assert.Equal(t, models.TransactionCategoryExpense, transaction.Category)
	assert.Equal(t, models.TransactionOriginManual, transaction.Origin)
	assert.Nil(t, transaction.LinkedOrderID)
	assert.True(t, transaction.AmountSecondary.Equal(decimal.NewFromInt(20)), "got %s", transaction.AmountSecondary)
	assert.NotEmpty(t, transaction.ReferenceNo)
}

func TestCreateManualSale(t *testing.T) {
	db := newTestDB(t)

	transaction, err := CreateManualTransaction(db, newTestConverter(t), NewTransaction{
		Category:      models.TransactionCategorySale,
		Subcategory:   "Design",
		AmountPrimary: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCategorySale, transaction.Category)
	assert.Nil(t, transaction.LinkedOrderID)
}

func TestCreateManualTransactionInvalidInput(t *testing.T) {
	db := newTestDB(t)
	converter := newTestConverter(t)

	_, err := CreateManualTransaction(db, converter, NewTransaction{
		Subcategory:   "Rent",
		AmountPrimary: decimal.Zero,
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = CreateManualTransaction(db, converter, NewTransaction{
		Subcategory:   "Rent",
		AmountPrimary: decimal.NewFromInt(-100),
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	// Subcategory outside the expense catalog
	_, err = CreateManualTransaction(db, converter, NewTransaction{
		Subcategory:   "Fuel",
		AmountPrimary: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	// Sale subcategory outside the item catalog
	_, err = CreateManualTransaction(db, converter, NewTransaction{
		Category:      models.TransactionCategorySale,
		Subcategory:   "Rent",
		AmountPrimary: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = CreateManualTransaction(db, converter, NewTransaction{
		Category:      "INCOME",
		Subcategory:   "Rent",
		AmountPrimary: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpdateManualTransaction(t *testing.T) {
	db := newTestDB(t)
	converter := newTestConverter(t)

	transaction, err := CreateManualTransaction(db, converter, NewTransaction{
		Subcategory:   "Rent",
		AmountPrimary: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	amount := decimal.NewFromInt(60000)
	subcategory := "Electricity"
	updated, err := UpdateTransaction(db, converter, transaction.ID, TransactionUpdate{
		Subcategory:   &subcategory,
		AmountPrimary: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, "Electricity", updated.Subcategory)
	assert.True(t, updated.AmountPrimary.Equal(amount))
	// Secondary amount re-derived from the new primary amount
	assert.True(t, updated.AmountSecondary.Equal(decimal.NewFromInt(24)), "got %s", updated.AmountSecondary)
}

func TestUpdateTransactionErrors(t *testing.T) {
	db := newTestDB(t)
	converter := newTestConverter(t)

	notes := "x"
	_, err := UpdateTransaction(db, converter, 99, TransactionUpdate{Notes: &notes})
	assert.ErrorIs(t, err, models.ErrNotFound)

	order := createTestOrder(t, db, "Asha", models.ItemTypeBanner, 2, 15000)
	_, sale := payTestOrder(t, db, order.ID)

	_, err = UpdateTransaction(db, converter, sale.ID, TransactionUpdate{Notes: &notes})
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestDeleteTransaction(t *testing.T) {
	db := newTestDB(t)
	converter := newTestConverter(t)

	transaction, err := CreateManualTransaction(db, converter, NewTransaction{
		Subcategory:   "Meals",
		AmountPrimary: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	require.NoError(t, DeleteTransaction(db, transaction.ID))
	assert.ErrorIs(t, DeleteTransaction(db, transaction.ID), models.ErrNotFound)
}

func TestDeleteAutoTransactionDirectlyIsForbidden(t *testing.T) {
	db := newTestDB(t)
	order := createTestOrder(t, db, "Asha", models.ItemTypeBanner, 2, 15000)
	_, sale := payTestOrder(t, db, order.ID)

	assert.ErrorIs(t, DeleteTransaction(db, sale.ID), models.ErrForbidden)

	// Still there
	transactions, err := ListTransactions(db, TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestListTransactionsFilters(t *testing.T) {
	db := newTestDB(t)
	converter := newTestConverter(t)

	jan := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	first, err := CreateManualTransaction(db, converter, NewTransaction{
		Subcategory:     "Rent",
		AmountPrimary:   decimal.NewFromInt(50000),
		TransactionDate: &jan,
	})
	require.NoError(t, err)

	second, err := CreateManualTransaction(db, converter, NewTransaction{
		Category:        models.TransactionCategorySale,
		Subcategory:     "Poster",
		AmountPrimary:   decimal.NewFromInt(8000),
		TransactionDate: &mar,
	})
	require.NoError(t, err)

	all, err := ListTransactions(db, TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	expense := models.TransactionCategoryExpense
	expenses, err := ListTransactions(db, TransactionFilter{Category: &expense})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, first.ID, expenses[0].ID)

	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	later, err := ListTransactions(db, TransactionFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, second.ID, later[0].ID)

	to := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	earlier, err := ListTransactions(db, TransactionFilter{To: &to})
	require.NoError(t, err)
	require.Len(t, earlier, 1)
	assert.Equal(t, first.ID, earlier[0].ID)
}
