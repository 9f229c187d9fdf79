package reinforcement

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrValidation marks malformed creation or transition input. The request is
// rejected and no state changes.
var ErrValidation = errors.New("validation failed")

// Service owns the reinforcement request lifecycle.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a reinforcement service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		logger:   logger,
		validate: validator.New(),
	}
}

// CreateInput is the creation payload. The quantity typically comes straight
// from a replenishment alert's missing-packs figure.
type CreateInput struct {
	ClientID          uint `json:"client_id" validate:"required"`
	PackGarmentID     uint `json:"pack_garment_id" validate:"required"`
	RequestedQuantity int  `json:"requested_quantity" validate:"required,gt=0"`
}

// Create validates the input and stores a new request in the Pendiente
// state. Creation sets created_at and updated_at to the same instant.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Request, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	req := &Request{
		ClientID:          in.ClientID,
		PackGarmentID:     in.PackGarmentID,
		RequestedQuantity: in.RequestedQuantity,
		Status:            StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return nil, fmt.Errorf("create reinforcement request: %w", err)
	}

	s.logger.Info("Reinforcement request created",
		zap.Uint("id", req.ID),
		zap.Uint("client_id", req.ClientID),
		zap.Int("quantity", req.RequestedQuantity))
	return req, nil
}

// SetStatus moves a request to the given status. Unknown literals are
// rejected before any state is touched; the set of known states is linear
// (Pendiente, En Gestión, Enviado, Completado) but monotonicity is left to
// the operator, matching how corrections are handled on the floor.
func (s *Service) SetStatus(ctx context.Context, id uint, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	res := s.db.WithContext(ctx).Model(&Request{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update reinforcement request %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns requests newest-first, optionally filtered to one client.
// A zero clientID means no filter.
func (s *Service) List(ctx context.Context, clientID uint) ([]Request, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}

	var requests []Request
	if err := q.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list reinforcement requests: %w", err)
	}
	return requests, nil
}
