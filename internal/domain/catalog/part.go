package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartStatus represents the status of a spare part in the catalog
type PartStatus string

const (
	PartStatusActive       PartStatus = "active"
	PartStatusInactive     PartStatus = "inactive"
	PartStatusDiscontinued PartStatus = "discontinued"
)

// Part represents a spare part or consumable in the branch catalog.
// Cost prices are branch-scoped: the same SKU may carry different cost
// prices in different branches.
type Part struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BranchID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	SKU       string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_part_branch_sku,priority:2" json:"sku"`
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	Unit      string          `gorm:"type:varchar(20);not null" json:"unit"`
	CostPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"cost_price"`
	SellPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"sell_price"`
	IsService bool            `gorm:"not null;default:false" json:"is_service"`
	Status    PartStatus      `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Part) TableName() string {
	return "parts"
}
