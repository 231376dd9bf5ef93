package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grace-hospital/grace-backend/internal/handlers"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, chatHandler *handlers.ChatHandler) {
	// Chat endpoint used by the web front-end
	app.Post("/chat", chatHandler.HandleChat)

	// Static front-end page
	app.Static("/", "./web/static")
}
