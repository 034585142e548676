package persistence

import (
	"context"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/workshop"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWorkOrderRepository implements workshop.Repository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// ListByBranchAndPeriod returns work orders whose accounting date
// (payment date, else creation date) lies in [start, end], parts
// preloaded. Undateable legacy rows, those with neither date, are
// returned as well so callers can count them instead of silently
// losing them. Legacy rows without a branch id are returned alongside
// the requested branch.
func (r *GormWorkOrderRepository) ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]workshop.WorkOrder, error) {
	var result []workshop.WorkOrder
	query := r.db.WithContext(ctx).
		Preload("PartsUsed").
		Where("((COALESCE(payment_date, created_date) BETWEEN ? AND ?) OR (payment_date IS NULL AND created_date IS NULL))", start, end)
	if branchID != uuid.Nil {
		query = query.Where("(branch_id = ? OR branch_id = ? OR branch_id IS NULL)", branchID, uuid.Nil)
	}
	if err := query.Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
