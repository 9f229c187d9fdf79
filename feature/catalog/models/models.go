package models

// Client is a laundry customer together with its three reader export
// sources. Source fields hold either http(s) URLs or object keys in the
// configured export bucket.
type Client struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	StockURL      string `gorm:"column:stock_url" json:"stock_url"`
	TagsURL       string `gorm:"column:tags_url" json:"tags_url"`
	LaundryURL    string `gorm:"column:laundry_url" json:"laundry_url"`
	StockLocation string `gorm:"column:stock_location;size:64;default:CAB-01" json:"stock_location"`
}

// Garment is one article in the maestro catalog. PackIdentifier marks the
// single tag type that identifies an assembled pack; everything else is a
// loose component.
type Garment struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Category       string `gorm:"size:64" json:"category"`
	PackIdentifier bool   `gorm:"column:pack_identifier" json:"pack_identifier"`
}

// PackRecipe is one bill-of-materials line: the pack garment consumes
// Quantity units of the component garment per assembled pack.
type PackRecipe struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	PackGarmentID      uint `gorm:"index;not null" json:"pack_garment_id"`
	ComponentGarmentID uint `gorm:"not null" json:"component_garment_id"`
	Quantity           int  `gorm:"not null" json:"quantity"`
}

// Target is a client's configured stock target for one pack type. At most
// one row exists per (client, pack) pair.
type Target struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ClientID       uint `gorm:"not null;uniqueIndex:idx_targets_client_pack" json:"client_id"`
	PackGarmentID  uint `gorm:"not null;uniqueIndex:idx_targets_client_pack" json:"pack_garment_id"`
	TargetQuantity int  `gorm:"not null" json:"target_quantity"`
}

// PackView is a pack garment together with its resolved recipe, as served by
// the packs listing.
type PackView struct {
	Garment
	Components []ComponentView `json:"components"`
}

// ComponentView is one resolved recipe line.
type ComponentView struct {
	RecipeID  uint   `json:"recipe_id"`
	GarmentID uint   `json:"garment_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}
