package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	config "github.com/randexapp/randex/configs"
	"github.com/randexapp/randex/models"
	"github.com/randexapp/randex/repository"
	"github.com/randexapp/randex/services"
	qrcode "github.com/skip2/go-qrcode"
)

type TicketHandler struct {
	Appointments repository.AppointmentRepository
}

func NewTicketHandler(appointments repository.AppointmentRepository) *TicketHandler {
	return &TicketHandler{Appointments: appointments}
}

// ticketPayload returns "appointmentID|date|time|timestamp|signature" so the
// business can verify the QR code at the door.
func ticketPayload(detail *models.AppointmentDetail) string {
	data := fmt.Sprintf("%s|%s|%s|%d", detail.ID, detail.AppointmentDate, detail.AppointmentTime, time.Now().Unix())

	h := hmac.New(sha256.New, []byte(config.Config("TICKET_SECRET")))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

func (h *TicketHandler) PrintTicket(c *fiber.Ctx) error {
	actor := currentActor(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	appointment, err := h.Appointments.GetWithBusiness(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found or access denied"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !services.CanAccess(actor, appointment) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found or access denied"})
	}
	if appointment.Status != models.StatusConfirmed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only confirmed appointments have tickets"})
	}

	detail, err := h.Appointments.DetailByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	qrPNG, err := qrcode.Encode(ticketPayload(detail), qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Appointment Ticket")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Business: %s", detail.BusinessName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Service: %s (%d min)", detail.ServiceName, detail.Duration))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s at %s", detail.AppointmentDate, detail.AppointmentTime))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Price: %.2f", detail.Price))
	pdf.Ln(12)

	pdf.RegisterImageOptionsReader("ticket-qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("ticket-qr", 10, pdf.GetY(), 60, 60, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=ticket-%s.pdf", detail.ID))
	return c.Send(buf.Bytes())
}
