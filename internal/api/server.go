package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mp11089219/kanban-board-website/internal/config"
)

func NewServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		AppName:      "Kanban Board Backend",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, x-access-token",
	}))

	// Static assets from the configured directory, registered before the
	// API routes so misses fall through to them
	app.Static("/", cfg.StaticDir)

	return app
}

// customErrorHandler answers for errors that escape a handler, such as a
// datastore failure on a login lookup. Those are not converted to the
// success/message envelope by the handlers themselves.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error: %v", err)

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

func StartServer(app *fiber.App, cfg *config.Config) error {
	log.Printf("Server starting on port %s\n", cfg.Port)
	return app.Listen(":" + cfg.Port)
}
