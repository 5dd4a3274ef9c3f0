package orderRoutes

import (
	orderController "biztrack/controllers/order"
	orderValidator "biztrack/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders")

	orderGroup.Post("/", orderValidator.Create(), orderController.CreateOrder)
	orderGroup.Get("/", orderController.ListOrders)
	orderGroup.Get("/:id", orderController.GetOrder)
	orderGroup.Put("/:id", orderValidator.Update(), orderController.UpdateOrder)
	orderGroup.Delete("/:id", orderController.DeleteOrder)
}
