package orderValidator

import (
	"biztrack/middleware"
	"biztrack/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Create validates an order create request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CustomerName string          `json:"customerName"`
			PhoneNumber  string          `json:"phoneNumber"`
			ItemType     string          `json:"itemType"`
			Quantity     int             `json:"quantity"`
			UnitPrice    decimal.Decimal `json:"unitPrice"`
			OrderDate    *time.Time      `json:"orderDate"`
			Notes        string          `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerName == "" {
			errors["customerName"] = "Customer name is required!"
		}
		if !models.ItemType(reqData.ItemType).IsValid() {
			errors["itemType"] = "Item type is not in the catalog!"
		}
		if reqData.Quantity <= 0 {
			errors["quantity"] = "Quantity must be greater than 0!"
		}
		if reqData.UnitPrice.IsNegative() {
			errors["unitPrice"] = "Unit price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

// Update validates a partial order update request
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CustomerName   *string          `json:"customerName"`
			PhoneNumber    *string          `json:"phoneNumber"`
			ItemType       *string          `json:"itemType"`
			Quantity       *int             `json:"quantity"`
			UnitPrice      *decimal.Decimal `json:"unitPrice"`
			PaymentStatus  *string          `json:"paymentStatus"`
			DeliveryStatus *string          `json:"deliveryStatus"`
			Notes          *string          `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerName != nil && *reqData.CustomerName == "" {
			errors["customerName"] = "Customer name must not be empty!"
		}
		if reqData.ItemType != nil && !models.ItemType(*reqData.ItemType).IsValid() {
			errors["itemType"] = "Item type is not in the catalog!"
		}
		if reqData.Quantity != nil && *reqData.Quantity <= 0 {
			errors["quantity"] = "Quantity must be greater than 0!"
		}
		if reqData.UnitPrice != nil && reqData.UnitPrice.IsNegative() {
			errors["unitPrice"] = "Unit price must not be negative!"
		}
		if reqData.PaymentStatus != nil && !models.PaymentStatus(*reqData.PaymentStatus).IsValid() {
			errors["paymentStatus"] = "Payment status must be UNPAID or PAID!"
		}
		if reqData.DeliveryStatus != nil && !models.DeliveryStatus(*reqData.DeliveryStatus).IsValid() {
			errors["deliveryStatus"] = "Delivery status must be PENDING or DELIVERED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrderUpdate", reqData)
		return c.Next()
	}
}
