package orderController

import (
	"biztrack/database"
	"biztrack/middleware"
	"biztrack/models"
	"biztrack/utils"
	"biztrack/workflow"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CreateOrder stores a new order with payment status UNPAID
func CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrder").(*struct {
		CustomerName string          `json:"customerName"`
		PhoneNumber  string          `json:"phoneNumber"`
		ItemType     string          `json:"itemType"`
		Quantity     int             `json:"quantity"`
		UnitPrice    decimal.Decimal `json:"unitPrice"`
		OrderDate    *time.Time      `json:"orderDate"`
		Notes        string          `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	order, err := workflow.CreateOrder(database.Database.Db, workflow.NewOrder{
		CustomerName: reqData.CustomerName,
		PhoneNumber:  reqData.PhoneNumber,
		ItemType:     models.ItemType(reqData.ItemType),
		Quantity:     reqData.Quantity,
		UnitPrice:    reqData.UnitPrice,
		OrderDate:    reqData.OrderDate,
		Notes:        reqData.Notes,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// ListOrders returns orders filtered by payment status and item type
func ListOrders(c *fiber.Ctx) error {
	filter := workflow.OrderFilter{}

	if raw := c.Query("paymentStatus"); raw != "" {
		status := models.PaymentStatus(raw)
		if !status.IsValid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment status must be UNPAID or PAID!", nil)
		}
		filter.PaymentStatus = &status
	}
	if raw := c.Query("itemType"); raw != "" {
		itemType := models.ItemType(raw)
		if !itemType.IsValid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Item type is not in the catalog!", nil)
		}
		filter.ItemType = &itemType
	}

	orders, err := workflow.ListOrders(database.Database.Db, filter)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}

// GetOrder returns a single order
func GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	order, err := workflow.GetOrder(database.Database.Db, uint(id))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully!", order)
}

// UpdateOrder applies a partial update; an UNPAID -> PAID change also
// records the linked sale transaction.
func UpdateOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	reqData, ok := c.Locals("validatedOrderUpdate").(*struct {
		CustomerName   *string          `json:"customerName"`
		PhoneNumber    *string          `json:"phoneNumber"`
		ItemType       *string          `json:"itemType"`
		Quantity       *int             `json:"quantity"`
		UnitPrice      *decimal.Decimal `json:"unitPrice"`
		PaymentStatus  *string          `json:"paymentStatus"`
		DeliveryStatus *string          `json:"deliveryStatus"`
		Notes          *string          `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	input := workflow.OrderUpdate{
		CustomerName: reqData.CustomerName,
		PhoneNumber:  reqData.PhoneNumber,
		Quantity:     reqData.Quantity,
		UnitPrice:    reqData.UnitPrice,
		Notes:        reqData.Notes,
	}
	if reqData.ItemType != nil {
		itemType := models.ItemType(*reqData.ItemType)
		input.ItemType = &itemType
	}
	if reqData.PaymentStatus != nil {
		status := models.PaymentStatus(*reqData.PaymentStatus)
		input.PaymentStatus = &status
	}
	if reqData.DeliveryStatus != nil {
		status := models.DeliveryStatus(*reqData.DeliveryStatus)
		input.DeliveryStatus = &status
	}

	order, sale, err := workflow.UpdateOrder(database.Database.Db, utils.ActiveConverter(), uint(id), input)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	data := fiber.Map{"order": order}
	if sale != nil {
		data["saleTransaction"] = sale
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated successfully!", data)
}

// DeleteOrder removes an order and its auto-generated transaction
func DeleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	if err := workflow.DeleteOrder(database.Database.Db, uint(id)); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order deleted successfully!", nil)
}
