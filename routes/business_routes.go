package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randexapp/randex/handlers"
	"github.com/randexapp/randex/middleware"
)

func BusinessRoutes(app *fiber.App, h *handlers.BusinessHandler) {
	api := app.Group("/api/v1")

	businesses := api.Group("/businesses")
	// Static segments before :id so fiber does not swallow them.
	businesses.Get("/owner/my-businesses", middleware.Protected(), middleware.BusinessOwnerRequired(), h.MyBusinesses)
	businesses.Get("", h.List)
	businesses.Get("/:id", h.GetByID)
	businesses.Post("", middleware.Protected(), middleware.BusinessOwnerRequired(), h.Create)
	businesses.Put("/:id", middleware.Protected(), middleware.BusinessOwnerRequired(), h.Update)
	businesses.Delete("/:id", middleware.Protected(), middleware.BusinessOwnerRequired(), h.Delete)
}
