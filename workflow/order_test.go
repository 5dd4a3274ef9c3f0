package workflow

import (
	"biztrack/models"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)

	order, err := CreateOrder(db, NewOrder{
		CustomerName: "Asha",
		ItemType:     models.ItemTypeBanner,
		Quantity:     2,
		UnitPrice:    decimal.NewFromInt(15000),
	})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(30000)), "got %s", order.TotalPrice)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Equal(t, models.DeliveryStatusPending, order.DeliveryStatus)
	assert.False(t, order.OrderDate.IsZero())
}

func TestCreateOrderInvalidInput(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name  string
		input NewOrder
	}{
		{"missing customer", NewOrder{ItemType: models.ItemTypePicha, Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
		{"unknown item type", NewOrder{CustomerName: "Asha", ItemType: "Gold Strip", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
		{"zero quantity", NewOrder{CustomerName: "Asha", ItemType: models.ItemTypePicha, Quantity: 0, UnitPrice: decimal.NewFromInt(100)}},
		{"negative quantity", NewOrder{CustomerName: "Asha", ItemType: models.ItemTypePicha, Quantity: -2, UnitPrice: decimal.NewFromInt(100)}},
		{"negative unit price", NewOrder{CustomerName: "Asha", ItemType: models.ItemTypePicha, Quantity: 1, UnitPrice: decimal.NewFromInt(-100)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateOrder(db, tc.input)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestListOrdersInsertionOrderAndFilters(t *testing.T) {
	db := newTestDB(t)

	first := createTestOrder(t, db, "Asha", models.ItemTypeBanner, 1, 5000)
	second := createTestOrder(t, db, "Juma", models.ItemTypePoster, 3, 2000)
	third := createTestOrder(t, db, "Neema", models.ItemTypeBanner, 2, 7000)
	payTestOrder(t, db, second.ID)

	orders, err := ListOrders(db, OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []uint{first.ID, second.ID, third.ID}, []uint{orders[0].ID, orders[1].ID, orders[2].ID})

	banner := models.ItemTypeBanner
	orders, err = ListOrders(db, OrderFilter{ItemType: &banner})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, third.ID, orders[1].ID)

	unpaid := models.PaymentStatusUnpaid
	orders, err = ListOrders(db, OrderFilter{PaymentStatus: &unpaid, ItemType: &banner})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	paid := models.PaymentStatusPaid
	orders, err = ListOrders(db, OrderFilter{PaymentStatus: &paid})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, second.ID, orders[0].ID)
}

func TestGetOrderNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetOrder(db, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateOrderRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	order := createTestOrder(t, db, "Asha", models.ItemTypeBanner, 2, 15000)

	quantity := 5
	unitPrice := decimal.NewFromInt(4000)
	updated, sale, err := UpdateOrder(db, newTestConverter(t), order.ID, OrderUpdate{
		Quantity:  &quantity,
		UnitPrice: &unitPrice,
	})
	require.NoError(t, err)
	assert.Nil(t, sale)
	assert.True(t, updated.TotalPrice.Equal(decimal.NewFromInt(20000)), "got %s", updated.TotalPrice)
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := newTestDB(t)

	notes := "missing"
	_, _, err := UpdateOrder(db, newTestConverter(t), 99, OrderUpdate{Notes: &notes})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateOrderInvalidInput(t *testing.T) {
	db := newTestDB(t)
	order := createTestOrder(t, db, "Asha", models.ItemTypeBanner, 2, 15000)

	badQuantity := 0
	_, _, err := UpdateOrder(db, newTestConverter(t), order.ID, OrderUpdate{Quantity: &badQuantity})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	badItem := models.ItemType("Cup")
	_, _, err = UpdateOrder(db, newTestConverter(t), order.ID, OrderUpdate{ItemType: &badItem})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	// Failed updates leave the order unchanged
	fetched, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeBanner, fetched.ItemType)
	assert.Equal(t, 2, fetched.Quantity)
}

func TestDeleteOrder(t *testing.T) {
	db := newTestDB(t)
	order := createTestOrder(t, db, "Asha", models.ItemTypeBanner, 2, 15000)

	require.NoError(t, DeleteOrder(db, order.ID))

	_, err := GetOrder(db, order.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, DeleteOrder(db, order.ID), models.ErrNotFound)
}
