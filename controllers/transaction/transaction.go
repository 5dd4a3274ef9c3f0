package transactionController

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

// CreateTransaction stores a manual income or expense entry
func CreateTransaction(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTransaction").(*struct {
		Category        string          `json:"category"`
		Subcategory     string          `json:"subcategory"`
		AmountPrimary   decimal.Decimal `json:"amountPrimary"`
		TransactionDate *time.Time      `json:"transactionDate"`
		Notes           string          `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	transaction, err := workflow.CreateManualTransaction(database.Database.Db, utils.ActiveConverter(), workflow.NewTransaction{
		Category:        models.TransactionCategory(reqData.Category),
		Subcategory:     reqData.Subcategory,
		AmountPrimary:   reqData.AmountPrimary,
		TransactionDate: reqData.TransactionDate,
		Notes:           reqData.Notes,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Transaction created successfully!", transaction)
}

// ListTransactions returns transactions filtered by category and date range
func ListTransactions(c *fiber.Ctx) error {
	filter := workflow.TransactionFilter{}

	if raw := c.Query("category"); raw != "" {
		category := models.TransactionCategory(raw)
		if !category.IsValid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category must be SALE or EXPENSE!", nil)
		}
		filter.Category = &category
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "from must be an RFC3339 timestamp!", nil)
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "to must be an RFC3339 timestamp!", nil)
		}
		filter.To = &to
	}

	transactions, err := workflow.ListTransactions(database.Database.Db, filter)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully!", fiber.Map{
		"transactions": transactions,
		"total":        len(transactions),
	})
}

// UpdateTransaction edits a manual transaction; auto-generated records are read-only
func UpdateTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	reqData, ok := c.Locals("validatedTransactionUpdate").(*struct {
		Subcategory     *string          `json:"subcategory"`
		AmountPrimary   *decimal.Decimal `json:"amountPrimary"`
		TransactionDate *time.Time       `json:"transactionDate"`
		Notes           *string          `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	transaction, err := workflow.UpdateTransaction(database.Database.Db, utils.ActiveConverter(), uint(id), workflow.TransactionUpdate{
		Subcategory:     reqData.Subcategory,
		AmountPrimary:   reqData.AmountPrimary,
		TransactionDate: reqData.TransactionDate,
		Notes:           reqData.Notes,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction updated successfully!", transaction)
}

// DeleteTransaction removes a manual transaction
func DeleteTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	if err := workflow.DeleteTransaction(database.Database.Db, uint(id)); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction deleted successfully!", nil)
}
