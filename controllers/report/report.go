package reportController

import (
	"biztrack/config"
	"biztrack/database"
	"biztrack/middleware"
	"biztrack/utils"
	"biztrack/workflow"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetSummary totals sales, expenses and net over an optional date range
func GetSummary(c *fiber.Ctx) error {
	var from, to *time.Time

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "from must be an RFC3339 timestamp!", nil)
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "to must be an RFC3339 timestamp!", nil)
		}
		to = &parsed
	}

	summary, err := workflow.Summarize(database.Database.Db, utils.ActiveConverter(), from, to)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary generated successfully!", fiber.Map{
		"summary":           summary,
		"primaryCurrency":   config.AppConfig.PrimaryCurrency,
		"secondaryCurrency": config.AppConfig.SecondaryCurrency,
		"exchangeRate":      config.AppConfig.ExchangeRate,
	})
}

// GetMonthlySummary totals one calendar month
func GetMonthlySummary(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))

	if month < 1 || month > 12 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "month must be between 1 and 12!", nil)
	}
	if year < 2000 || year > 2100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "year is out of range!", nil)
	}

	summary, err := workflow.MonthlySummary(database.Database.Db, utils.ActiveConverter(), year, time.Month(month))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Monthly summary generated successfully!", fiber.Map{
		"year":    year,
		"month":   month,
		"summary": summary,
	})
}
