package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"github.com/randexapp/randex/repository"
)

type BusinessHandler struct {
	Businesses repository.BusinessRepository
}

func NewBusinessHandler(businesses repository.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{Businesses: businesses}
}

type BusinessRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	OpeningTime string  `json:"opening_time,omitempty"`
	ClosingTime string  `json:"closing_time,omitempty"`
}

func (h *BusinessHandler) List(c *fiber.Ctx) error {
	filter := repository.BusinessFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}

	summaries, err := h.Businesses.List(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summaries)
}

func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid business ID"})
	}

	detail, err := h.Businesses.GetDetail(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(detail)
}

func (h *BusinessHandler) MyBusinesses(c *fiber.Ctx) error {
	actor := currentActor(c)

	summaries, err := h.Businesses.ListByOwner(c.UserContext(), actor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summaries)
}

func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req BusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	business := models.Business{
		OwnerID:     actor.ID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}
	if business.OpeningTime == "" {
		business.OpeningTime = "09:00"
	}
	if business.ClosingTime == "" {
		business.ClosingTime = "18:00"
	}

	if err := h.Businesses.Create(c.UserContext(), &business); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(business)
}

func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	actor := currentActor(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid business ID"})
	}

	var req BusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	business, err := h.Businesses.GetOwned(c.UserContext(), id, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found or access denied"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	business.Name = req.Name
	business.Type = req.Type
	business.Description = req.Description
	business.Address = req.Address
	business.Phone = req.Phone
	business.ImageURL = req.ImageURL
	if req.OpeningTime != "" {
		business.OpeningTime = req.OpeningTime
	}
	if req.ClosingTime != "" {
		business.ClosingTime = req.ClosingTime
	}

	if err := h.Businesses.Update(c.UserContext(), business); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(business)
}

func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	actor := currentActor(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid business ID"})
	}

	if _, err := h.Businesses.GetOwned(c.UserContext(), id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found or access denied"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Businesses.Delete(c.UserContext(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Business deleted successfully"})
}
