package transactionRoutes

import (
	transactionController "biztrack/controllers/transaction"
	transactionValidator "biztrack/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionRoutes(app *fiber.App) {
	transactionGroup := app.Group("/transactions")

	transactionGroup.Post("/", transactionValidator.Create(), transactionController.CreateTransaction)
	transactionGroup.Get("/", transactionController.ListTransactions)
	transactionGroup.Put("/:id", transactionValidator.Update(), transactionController.UpdateTransaction)
	transactionGroup.Delete("/:id", transactionController.DeleteTransaction)
}
