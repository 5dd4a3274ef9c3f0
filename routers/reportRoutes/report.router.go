package reportRoutes

import (
	reportController "biztrack/controllers/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reportGroup := app.Group("/reports")

	reportGroup.Get("/summary", reportController.GetSummary)
	reportGroup.Get("/monthly", reportController.GetMonthlySummary)
}
