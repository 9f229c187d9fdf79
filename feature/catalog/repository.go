package catalog

import (
	"context"
	"fmt"

	"linen-tracker/core/reconcile"
	"linen-tracker/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository wraps the catalog tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Garments returns all catalog garments.
func (r *Repository) Garments(ctx context.Context) ([]models.Garment, error) {
	var garments []models.Garment
	if err := r.db.WithContext(ctx).Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("load garments: %w", err)
	}
	return garments, nil
}

// CreateGarment inserts a garment.
func (r *Repository) CreateGarment(ctx context.Context, g *models.Garment) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create garment: %w", err)
	}
	return nil
}

// UpdateGarment updates a garment's editable fields.
func (r *Repository) UpdateGarment(ctx context.Context, g *models.Garment) error {
	res := r.db.WithContext(ctx).Model(&models.Garment{}).Where("id = ?", g.ID).
		Updates(map[string]any{
			"name":            g.Name,
			"category":        g.Category,
			"pack_identifier": g.PackIdentifier,
		})
	if res.Error != nil {
		return fmt.Errorf("update garment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteGarment removes a garment.
func (r *Repository) DeleteGarment(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Garment{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete garment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GarmentCount returns how many of the given garment IDs exist.
func (r *Repository) GarmentCount(ctx context.Context, ids []uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Garment{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count garments: %w", err)
	}
	return n, nil
}

// Packs returns every pack-identifier garment with its resolved recipe.
func (r *Repository) Packs(ctx context.Context) ([]models.PackView, error) {
	var packs []models.Garment
	if err := r.db.WithContext(ctx).Where("pack_identifier = ?", true).Find(&packs).Error; err != nil {
		return nil, fmt.Errorf("load packs: %w", err)
	}

	views := make([]models.PackView, 0, len(packs))
	for _, p := range packs {
		components, err := r.packComponents(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.PackView{Garment: p, Components: components})
	}
	return views, nil
}

func (r *Repository) packComponents(ctx context.Context, packID uint) ([]models.ComponentView, error) {
	var components []models.ComponentView
	err := r.db.WithContext(ctx).Table("pack_recipes").
		Select("pack_recipes.id AS recipe_id, pack_recipes.component_garment_id AS garment_id, garments.name AS name, pack_recipes.quantity AS quantity").
		Joins("JOIN garments ON garments.id = pack_recipes.component_garment_id").
		Where("pack_recipes.pack_garment_id = ?", packID).
		Scan(&components).Error
	if err != nil {
		return nil, fmt.Errorf("load pack components: %w", err)
	}
	return components, nil
}

// CreatePack creates the pack garment and its recipe in one transaction.
func (r *Repository) CreatePack(ctx context.Context, name string, recipe []models.PackRecipe) (uint, error) {
	pack := models.Garment{Name: name, Category: "Pack", PackIdentifier: true}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pack).Error; err != nil {
			return err
		}
		for i := range recipe {
			recipe[i].PackGarmentID = pack.ID
		}
		if len(recipe) > 0 {
			if err := tx.Create(&recipe).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create pack: %w", err)
	}
	return pack.ID, nil
}

// UpdatePack renames the pack and replaces its recipe wholesale.
func (r *Repository) UpdatePack(ctx context.Context, packID uint, name string, recipe []models.PackRecipe) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Garment{}).Where("id = ?", packID).Update("name", name).Error; err != nil {
			return err
		}
		if err := tx.Where("pack_garment_id = ?", packID).Delete(&models.PackRecipe{}).Error; err != nil {
			return err
		}
		for i := range recipe {
			recipe[i].ID = 0
			recipe[i].PackGarmentID = packID
		}
		if len(recipe) > 0 {
			if err := tx.Create(&recipe).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update pack: %w", err)
	}
	return nil
}

// DeletePack removes the pack garment, its recipe and its targets.
func (r *Repository) DeletePack(ctx context.Context, packID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pack_garment_id = ?", packID).Delete(&models.PackRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pack_garment_id = ?", packID).Delete(&models.Target{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Garment{}, packID).Error
	})
	if err != nil {
		return fmt.Errorf("delete pack: %w", err)
	}
	return nil
}

// UpsertTarget stores a client's target for one pack. One idempotent upsert
// keyed by (client, pack); the newest quantity wins.
func (r *Repository) UpsertTarget(ctx context.Context, t *models.Target) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "pack_garment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_quantity"}),
	}).Create(t).Error
	if err != nil {
		return fmt.Errorf("upsert target: %w", err)
	}
	return nil
}

// Targets returns all configured targets.
func (r *Repository) Targets(ctx context.Context) ([]models.Target, error) {
	var targets []models.Target
	if err := r.db.WithContext(ctx).Find(&targets).Error; err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	return targets, nil
}

// Clients returns all clients.
func (r *Repository) Clients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	return clients, nil
}

// ClientByID returns one client.
func (r *Repository) ClientByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, fmt.Errorf("load client %d: %w", id, err)
	}
	return &client, nil
}

// CreateClient inserts a client.
func (r *Repository) CreateClient(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// UpdateClient updates a client's editable fields.
func (r *Repository) UpdateClient(ctx context.Context, c *models.Client) error {
	res := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":           c.Name,
			"stock_url":      c.StockURL,
			"tags_url":       c.TagsURL,
			"laundry_url":    c.LaundryURL,
			"stock_location": c.StockLocation,
		})
	if res.Error != nil {
		return fmt.Errorf("update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EngineCatalog loads the garments in the shape the reconciliation engine
// consumes. Order is fixed by ID so engine output stays deterministic.
func (r *Repository) EngineCatalog(ctx context.Context) ([]reconcile.Garment, error) {
	var garments []models.Garment
	if err := r.db.WithContext(ctx).Order("id").Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	out := make([]reconcile.Garment, 0, len(garments))
	for _, g := range garments {
		out = append(out, reconcile.Garment{
			ID:             g.ID,
			Name:           g.Name,
			Category:       g.Category,
			PackIdentifier: g.PackIdentifier,
		})
	}
	return out, nil
}

// BillOfMaterials loads every recipe line with component names resolved.
func (r *Repository) BillOfMaterials(ctx context.Context) (reconcile.BillOfMaterials, error) {
	var rows []struct {
		PackGarmentID uint
		Name          string
		Quantity      int
	}
	err := r.db.WithContext(ctx).Table("pack_recipes").
		Select("pack_recipes.pack_garment_id, garments.name, pack_recipes.quantity").
		Joins("JOIN garments ON garments.id = pack_recipes.component_garment_id").
		Order("pack_recipes.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load bill of materials: %w", err)
	}

	bom := make(reconcile.BillOfMaterials)
	for _, row := range rows {
		bom[row.PackGarmentID] = append(bom[row.PackGarmentID], reconcile.Component{
			Name:     row.Name,
			Quantity: row.Quantity,
		})
	}
	return bom, nil
}

// TargetsForClient loads one client's targets keyed by pack garment ID.
func (r *Repository) TargetsForClient(ctx context.Context, clientID uint) (reconcile.Targets, error) {
	var targets []models.Target
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&targets).Error; err != nil {
		return nil, fmt.Errorf("load targets for client %d: %w", clientID, err)
	}
	out := make(reconcile.Targets, len(targets))
	for _, t := range targets {
		out[t.PackGarmentID] = t.TargetQuantity
	}
	return out, nil
}
