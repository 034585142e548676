package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the lifecycle status of a point-of-sale receipt
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// IsValid returns true for a known status
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusCancelled, SaleStatusRefunded:
		return true
	}
	return false
}

// Sale represents a point-of-sale receipt recorded at a branch
type Sale struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BranchID  uuid.UUID       `gorm:"type:uuid;index" json:"branch_id"`
	SoldAt    time.Time       `gorm:"not null;index" json:"sold_at"`
	Status    SaleStatus      `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total"`
	Items     []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. UnitCostPrice is the cost frozen at
// sale time; zero means no cost was recorded and the current catalog
// price applies. Service lines carry no parts cost at all.
type SaleItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	PartID        uuid.UUID       `gorm:"type:uuid;index" json:"part_id"`
	SKU           string          `gorm:"type:varchar(50)" json:"sku"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	UnitCostPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"unit_cost_price"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"unit_price"`
	IsService     bool            `gorm:"not null;default:false" json:"is_service"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// CountsTowardRevenue reports whether the sale contributes revenue.
// Cancelled and refunded sales never do.
func (s Sale) CountsTowardRevenue() bool {
	return s.Status != SaleStatusCancelled && s.Status != SaleStatusRefunded
}
