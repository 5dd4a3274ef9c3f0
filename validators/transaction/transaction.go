package transactionValidator

import (
	"biztrack/middleware"
	"biztrack/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Create validates a manual transaction create request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category        string          `json:"category"`
			Subcategory     string          `json:"subcategory"`
			AmountPrimary   decimal.Decimal `json:"amountPrimary"`
			TransactionDate *time.Time      `json:"transactionDate"`
			Notes           string          `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Category != "" && !models.TransactionCategory(reqData.Category).IsValid() {
			errors["category"] = "Category must be SALE or EXPENSE!"
		}
		if reqData.Subcategory == "" {
			errors["subcategory"] = "Subcategory is required!"
		}
		if !reqData.AmountPrimary.IsPositive() {
			errors["amountPrimary"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransaction", reqData)
		return c.Next()
	}
}

// Update validates a partial transaction update request
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subcategory     *string          `json:"subcategory"`
			AmountPrimary   *decimal.Decimal `json:"amountPrimary"`
			TransactionDate *time.Time       `json:"transactionDate"`
			Notes           *string          `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Subcategory != nil && *reqData.Subcategory == "" {
			errors["subcategory"] = "Subcategory must not be empty!"
		}
		if reqData.AmountPrimary != nil && !reqData.AmountPrimary.IsPositive() {
			errors["amountPrimary"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransactionUpdate", reqData)
		return c.Next()
	}
}
