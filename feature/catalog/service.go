package catalog

import (
	"context"
	"errors"
	"fmt"

	"linen-tracker/feature/catalog/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrValidation marks malformed catalog input. Handlers map it to a 400.
var ErrValidation = errors.New("validation failed")

// Service owns catalog business rules on top of the repository.
type Service struct {
	repo     *Repository
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a catalog service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
	}
}

// GarmentInput is the creation/update payload for a garment.
type GarmentInput struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category"`
	PackIdentifier bool   `json:"pack_identifier"`
}

// RecipeLineInput is one component line in a pack payload.
type RecipeLineInput struct {
	GarmentID uint `json:"garment_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

// PackInput is the creation/update payload for a pack and its recipe.
type PackInput struct {
	Name       string            `json:"name" validate:"required"`
	Components []RecipeLineInput `json:"components" validate:"dive"`
}

// TargetInput is the upsert payload for a per-client pack target.
type TargetInput struct {
	ClientID       uint `json:"client_id" validate:"required"`
	PackGarmentID  uint `json:"pack_garment_id" validate:"required"`
	TargetQuantity int  `json:"target_quantity" validate:"gte=0"`
}

// ClientInput is the creation/update payload for a client.
type ClientInput struct {
	Name          string `json:"name" validate:"required"`
	StockURL      string `json:"stock_url"`
	TagsURL       string `json:"tags_url"`
	LaundryURL    string `json:"laundry_url"`
	StockLocation string `json:"stock_location"`
}

// CreateGarment validates and stores a new garment.
func (s *Service) CreateGarment(ctx context.Context, in GarmentInput) (*models.Garment, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	g := &models.Garment{Name: in.Name, Category: in.Category, PackIdentifier: in.PackIdentifier}
	if err := s.repo.CreateGarment(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGarment validates and applies a garment update.
func (s *Service) UpdateGarment(ctx context.Context, id uint, in GarmentInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateGarment(ctx, &models.Garment{
		ID:             id,
		Name:           in.Name,
		Category:       in.Category,
		PackIdentifier: in.PackIdentifier,
	})
}

// CreatePack validates the recipe and creates the pack garment plus its
// bill of materials.
func (s *Service) CreatePack(ctx context.Context, in PackInput) (uint, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.checkRecipe(ctx, 0, in.Components); err != nil {
		return 0, err
	}
	return s.repo.CreatePack(ctx, in.Name, recipeRows(in.Components))
}

// UpdatePack validates the recipe and replaces the pack's bill of materials.
func (s *Service) UpdatePack(ctx context.Context, packID uint, in PackInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.checkRecipe(ctx, packID, in.Components); err != nil {
		return err
	}
	return s.repo.UpdatePack(ctx, packID, in.Name, recipeRows(in.Components))
}

// checkRecipe rejects self-referential lines and lines pointing at garments
// that do not exist. A pack listing itself as its own component would make
// the integrity expansion feed on its own output.
func (s *Service) checkRecipe(ctx context.Context, packID uint, components []RecipeLineInput) error {
	if len(components) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(components))
	ids := make([]uint, 0, len(components))
	for _, c := range components {
		if packID != 0 && c.GarmentID == packID {
			return fmt.Errorf("%w: pack %d cannot list itself as a component", ErrValidation, packID)
		}
		if _, ok := seen[c.GarmentID]; ok {
			continue
		}
		seen[c.GarmentID] = struct{}{}
		ids = append(ids, c.GarmentID)
	}

	n, err := s.repo.GarmentCount(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return fmt.Errorf("%w: recipe references unknown garments", ErrValidation)
	}
	return nil
}

func recipeRows(components []RecipeLineInput) []models.PackRecipe {
	rows := make([]models.PackRecipe, 0, len(components))
	for _, c := range components {
		rows = append(rows, models.PackRecipe{
			ComponentGarmentID: c.GarmentID,
			Quantity:           c.Quantity,
		})
	}
	return rows
}

// UpsertTarget validates and stores a client's pack target, last write wins.
func (s *Service) UpsertTarget(ctx context.Context, in TargetInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpsertTarget(ctx, &models.Target{
		ClientID:       in.ClientID,
		PackGarmentID:  in.PackGarmentID,
		TargetQuantity: in.TargetQuantity,
	})
}

// CreateClient validates and stores a new client.
func (s *Service) CreateClient(ctx context.Context, in ClientInput) (*models.Client, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	c := &models.Client{
		Name:          in.Name,
		StockURL:      in.StockURL,
		TagsURL:       in.TagsURL,
		LaundryURL:    in.LaundryURL,
		StockLocation: in.StockLocation,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClient validates and applies a client update.
func (s *Service) UpdateClient(ctx context.Context, id uint, in ClientInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateClient(ctx, &models.Client{
		ID:            id,
		Name:          in.Name,
		StockURL:      in.StockURL,
		TagsURL:       in.TagsURL,
		LaundryURL:    in.LaundryURL,
		StockLocation: in.StockLocation,
	})
}

// Garments lists the catalog.
func (s *Service) Garments(ctx context.Context) ([]models.Garment, error) {
	return s.repo.Garments(ctx)
}

// DeleteGarment removes a garment.
func (s *Service) DeleteGarment(ctx context.Context, id uint) error {
	return s.repo.DeleteGarment(ctx, id)
}

// Packs lists packs with their recipes.
func (s *Service) Packs(ctx context.Context) ([]models.PackView, error) {
	return s.repo.Packs(ctx)
}

// DeletePack removes a pack, its recipe and its targets.
func (s *Service) DeletePack(ctx context.Context, id uint) error {
	return s.repo.DeletePack(ctx, id)
}

// Targets lists all configured targets.
func (s *Service) Targets(ctx context.Context) ([]models.Target, error) {
	return s.repo.Targets(ctx)
}

// Clients lists all clients.
func (s *Service) Clients(ctx context.Context) ([]models.Client, error) {
	return s.repo.Clients(ctx)
}
