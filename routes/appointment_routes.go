package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/randexapp/randex/handlers"
	"github.com/randexapp/randex/middleware"
)

func AppointmentRoutes(app *fiber.App, h *handlers.AppointmentHandler, t *handlers.TicketHandler) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments")
	appointments.Get("/available-slots/:businessId/:date", h.AvailableSlots)
	appointments.Get("/my-appointments", middleware.Protected(), h.MyAppointments)
	appointments.Post("", middleware.Protected(), middleware.CustomerRequired(), h.Create)
	appointments.Put("/:id/status", middleware.Protected(), h.UpdateStatus)
	appointments.Get("/:id/ticket", middleware.Protected(), t.PrintTicket)
}
