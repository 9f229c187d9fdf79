package reinforcement

import (
	"errors"

	"linen-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for reinforcement requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reinforcement routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reinforcements")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Put("/:id/status", h.HandleSetStatus)
}

// HandleList lists reinforcement requests, newest first.
// @Summary List Reinforcement Requests
// @Tags reinforcement
// @Produce json
// @Param client_id query int false "Filter by client"
// @Success 200 {array} Request
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reinforcements [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	clientID := c.QueryInt("client_id")
	requests, err := h.service.List(c.Context(), uint(clientID))
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Listing reinforcement requests failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(requests)
}

// HandleCreate creates a reinforcement request.
// @Summary Create Reinforcement Request
// @Tags reinforcement
// @Accept json
// @Produce json
// @Param request body CreateInput true "Request"
// @Success 200 {object} Request
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /reinforcements [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	req, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(req)
}

// HandleSetStatus transitions a request to a new status.
// @Summary Set Request Status
// @Tags reinforcement
// @Accept json
// @Param id path int true "Request ID"
// @Param status body object true "Status payload, e.g. {\"status\": \"Enviado\"}"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /reinforcements/{id}/status [put]
func (h *Handler) HandleSetStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := h.service.SetStatus(c.Context(), uint(id), body.Status); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// fail maps service errors to HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	switch {
	case errors.Is(err, ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		l.Error("Reinforcement request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
