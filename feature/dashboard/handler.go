package dashboard

import (
	"errors"

	"linen-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard runs a reconciliation pass and returns the full dashboard
// payload for one client.
// @Summary Get Dashboard
// @Tags dashboard
// @Produce json
// @Param client_id query int true "Client ID"
// @Success 200 {object} Data
// @Failure 400 {object} map[string]string "Missing client"
// @Failure 404 {object} map[string]string "Unknown client"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	clientID := c.QueryInt("client_id")
	if clientID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id is required"})
	}

	data, err := h.service.Build(c.Context(), uint(clientID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "client not found"})
		}
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Dashboard pass failed", zap.Uint("client_id", uint(clientID)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(data)
}
