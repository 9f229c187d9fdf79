package reinforcement

import "time"

// Request statuses. The literals are the wire values the existing client
// installations already speak, so they stay as-is.
const (
	StatusPending    = "Pendiente"
	StatusInProgress = "En Gestión"
	StatusShipped    = "Enviado"
	StatusCompleted  = "Completado"
)

// ValidStatus reports whether s is one of the four request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusShipped, StatusCompleted:
		return true
	default:
		return false
	}
}

// Request is a replenishment request for one pack type. It is created either
// by a client user or from a replenishment alert, and afterwards only its
// status ever changes.
type Request struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ClientID          uint      `gorm:"index;not null" json:"client_id"`
	PackGarmentID     uint      `gorm:"not null" json:"pack_garment_id"`
	RequestedQuantity int       `gorm:"not null" json:"requested_quantity"`
	Status            string    `gorm:"size:32;not null;default:Pendiente" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName keeps the table name the previous system used.
func (Request) TableName() string {
	return "reinforcement_requests"
}
