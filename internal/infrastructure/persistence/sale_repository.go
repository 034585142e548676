package persistence

import (
	"context"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/sales"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements sales.Repository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// ListByBranchAndPeriod returns sales whose sale timestamp lies in
// [start, end], items preloaded. Legacy rows without a branch id are
// returned alongside the requested branch; a nil branch id returns
// every branch.
func (r *GormSaleRepository) ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]sales.Sale, error) {
	var result []sales.Sale
	query := r.db.WithContext(ctx).
		Preload("Items").
		Where("sold_at BETWEEN ? AND ?", start, end)
	if branchID != uuid.Nil {
		query = query.Where("(branch_id = ? OR branch_id = ? OR branch_id IS NULL)", branchID, uuid.Nil)
	}
	if err := query.Order("sold_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
