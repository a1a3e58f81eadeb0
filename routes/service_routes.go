package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randexapp/randex/handlers"
	"github.com/randexapp/randex/middleware"
)

func ServiceRoutes(app *fiber.App, h *handlers.ServiceHandler) {
	api := app.Group("/api/v1")

	services := api.Group("/services")
	services.Get("/business/:businessId", h.ListByBusiness)
	services.Post("", middleware.Protected(), middleware.BusinessOwnerRequired(), h.Create)
	services.Put("/:id", middleware.Protected(), middleware.BusinessOwnerRequired(), h.Update)
	services.Delete("/:id", middleware.Protected(), middleware.BusinessOwnerRequired(), h.Delete)
}
