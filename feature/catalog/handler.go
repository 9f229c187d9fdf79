package catalog

import (
	"errors"

	"linen-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	garments := app.Group("/garments")
	garments.Get("/", h.HandleListGarments)
	garments.Post("/", h.HandleCreateGarment)
	garments.Put("/:id", h.HandleUpdateGarment)
	garments.Delete("/:id", h.HandleDeleteGarment)

	packs := app.Group("/packs")
	packs.Get("/", h.HandleListPacks)
	packs.Post("/", h.HandleCreatePack)
	packs.Put("/:id", h.HandleUpdatePack)
	packs.Delete("/:id", h.HandleDeletePack)

	targets := app.Group("/targets")
	targets.Get("/", h.HandleListTargets)
	targets.Post("/", h.HandleUpsertTarget)

	clients := app.Group("/clients")
	clients.Get("/", h.HandleListClients)
	clients.Post("/", h.HandleCreateClient)
	clients.Put("/:id", h.HandleUpdateClient)
}

// HandleListGarments lists the garment catalog.
// @Summary List Garments
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Garment
// @Router /garments [get]
func (h *Handler) HandleListGarments(c *fiber.Ctx) error {
	garments, err := h.service.Garments(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(garments)
}

// HandleCreateGarment creates a garment.
// @Summary Create Garment
// @Tags catalog
// @Accept json
// @Produce json
// @Param garment body GarmentInput true "Garment"
// @Success 200 {object} models.Garment
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /garments [post]
func (h *Handler) HandleCreateGarment(c *fiber.Ctx) error {
	var in GarmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	g, err := h.service.CreateGarment(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(g)
}

// HandleUpdateGarment updates a garment.
// @Summary Update Garment
// @Tags catalog
// @Accept json
// @Param id path int true "Garment ID"
// @Param garment body GarmentInput true "Garment"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /garments/{id} [put]
func (h *Handler) HandleUpdateGarment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in GarmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.service.UpdateGarment(c.Context(), uint(id), in); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDeleteGarment deletes a garment.
// @Summary Delete Garment
// @Tags catalog
// @Param id path int true "Garment ID"
// @Success 200 {object} map[string]bool
// @Router /garments/{id} [delete]
func (h *Handler) HandleDeleteGarment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.service.DeleteGarment(c.Context(), uint(id)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleListPacks lists packs with their recipes.
// @Summary List Packs
// @Tags catalog
// @Produce json
// @Success 200 {array} models.PackView
// @Router /packs [get]
func (h *Handler) HandleListPacks(c *fiber.Ctx) error {
	packs, err := h.service.Packs(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(packs)
}

// HandleCreatePack creates a pack and its recipe.
// @Summary Create Pack
// @Tags catalog
// @Accept json
// @Produce json
// @Param pack body PackInput true "Pack"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /packs [post]
func (h *Handler) HandleCreatePack(c *fiber.Ctx) error {
	var in PackInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, err := h.service.CreatePack(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "success": true})
}

// HandleUpdatePack replaces a pack's name and recipe.
// @Summary Update Pack
// @Tags catalog
// @Accept json
// @Param id path int true "Pack ID"
// @Param pack body PackInput true "Pack"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /packs/{id} [put]
func (h *Handler) HandleUpdatePack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in PackInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.service.UpdatePack(c.Context(), uint(id), in); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDeletePack deletes a pack, its recipe and its targets.
// @Summary Delete Pack
// @Tags catalog
// @Param id path int true "Pack ID"
// @Success 200 {object} map[string]bool
// @Router /packs/{id} [delete]
func (h *Handler) HandleDeletePack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.service.DeletePack(c.Context(), uint(id)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleListTargets lists configured targets.
// @Summary List Targets
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Target
// @Router /targets [get]
func (h *Handler) HandleListTargets(c *fiber.Ctx) error {
	targets, err := h.service.Targets(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(targets)
}

// HandleUpsertTarget stores a client's pack target, last write wins.
// @Summary Upsert Target
// @Tags catalog
// @Accept json
// @Param target body TargetInput true "Target"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /targets [post]
func (h *Handler) HandleUpsertTarget(c *fiber.Ctx) error {
	var in TargetInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.service.UpsertTarget(c.Context(), in); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleListClients lists clients.
// @Summary List Clients
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Client
// @Router /clients [get]
func (h *Handler) HandleListClients(c *fiber.Ctx) error {
	clients, err := h.service.Clients(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(clients)
}

// HandleCreateClient creates a client.
// @Summary Create Client
// @Tags catalog
// @Accept json
// @Produce json
// @Param client body ClientInput true "Client"
// @Success 200 {object} models.Client
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /clients [post]
func (h *Handler) HandleCreateClient(c *fiber.Ctx) error {
	var in ClientInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	client, err := h.service.CreateClient(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(client)
}

// HandleUpdateClient updates a client.
// @Summary Update Client
// @Tags catalog
// @Accept json
// @Param id path int true "Client ID"
// @Param client body ClientInput true "Client"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /clients/{id} [put]
func (h *Handler) HandleUpdateClient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var in ClientInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.service.UpdateClient(c.Context(), uint(id), in); err != nil {
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
		l.Error("Catalog request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
