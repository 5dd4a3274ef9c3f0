package workflow

import (
	"biztrack/models"
	"biztrack/utils"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database per test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.Transaction{}))
	return db
}

// newTestConverter uses the default rate of 2500 primary units per secondary unit
func newTestConverter(t *testing.T) *utils.CurrencyConverter {
	t.Helper()

	converter, err := utils.NewCurrencyConverter(decimal.NewFromInt(2500))
	require.NoError(t, err)
	return converter
}

func createTestOrder(t *testing.T, db *gorm.DB, customer string, itemType models.ItemType, quantity int, unitPrice int64) *models.Order {
	t.Helper()

	order, err := CreateOrder(db, NewOrder{
		CustomerName: customer,
		ItemType:     itemType,
		Quantity:     quantity,
		UnitPrice:    decimal.NewFromInt(unitPrice),
	})
	require.NoError(t, err)
	return order
}

func payTestOrder(t *testing.T, db *gorm.DB, id uint) (*models.Order, *models.Transaction) {
	t.Helper()

	paid := models.PaymentStatusPaid
	order, sale, err := UpdateOrder(db, newTestConverter(t), id, OrderUpdate{PaymentStatus: &paid})
	require.NoError(t, err)
	require.NotNil(t, sale)
	return order, sale
}
