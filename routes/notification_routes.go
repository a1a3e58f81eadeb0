package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/randexapp/randex/handlers"
	"github.com/randexapp/randex/middleware"
)

func NotificationRoutes(app *fiber.App, n *handlers.NotificationHandler) {
	api := app.Group("/api/v1")

	api.Get("/uploads/signature", middleware.Protected(), middleware.BusinessOwnerRequired(), handlers.GenerateUploadSignature)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(n.ServeWs))
}
