package main

import (
	"log"
	"os"

	"itboxparser/config"
	"itboxparser/db"
	"itboxparser/routes"
	"itboxparser/scraper"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize database
	db.InitDatabase(cfg.DatabasePath)

	client := scraper.NewClient(scraper.Options{
		BaseURL:    cfg.Upstream.BaseURL,
		Timeout:    cfg.Upstream.Timeout(),
		RetryCount: cfg.Upstream.RetryCount,
		UserAgent:  cfg.Upstream.UserAgent,
	})

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, client)

	// Start server
	log.Fatal(app.Listen(cfg.ListenAddr))
}
