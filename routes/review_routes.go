package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randexapp/randex/handlers"
	"github.com/randexapp/randex/middleware"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews")
	reviews.Get("/business/:businessId", h.ListByBusiness)
	reviews.Post("", middleware.Protected(), middleware.CustomerRequired(), h.Create)
	reviews.Put("/:id", middleware.Protected(), middleware.CustomerRequired(), h.Update)
	reviews.Delete("/:id", middleware.Protected(), middleware.CustomerRequired(), h.Delete)
}
