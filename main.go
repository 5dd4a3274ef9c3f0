package main

import (
	"biztrack/config"
	"biztrack/database"
	orderRoutes "biztrack/routers/orderRoutes"
	reportRoutes "biztrack/routers/reportRoutes"
	transactionRoutes "biztrack/routers/transactionRoutes"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type",
	}))

	// Log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	orderRoutes.SetupOrderRoutes(app)
	transactionRoutes.SetupTransactionRoutes(app)
	reportRoutes.SetupReportRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
