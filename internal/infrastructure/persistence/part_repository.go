package persistence

import (
	"context"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartRepository implements catalog.Repository using GORM
type GormPartRepository struct {
	db *gorm.DB
}

// NewGormPartRepository creates a new GormPartRepository
func NewGormPartRepository(db *gorm.DB) *GormPartRepository {
	return &GormPartRepository{db: db}
}

// ListByBranch returns all parts of one branch. Inactive and
// discontinued parts are included: historical sales still reference
// them and their cost prices must stay resolvable.
func (r *GormPartRepository) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]catalog.Part, error) {
	var parts []catalog.Part
	query := r.db.WithContext(ctx).Model(&catalog.Part{})
	if branchID != uuid.Nil {
		query = query.Where("branch_id = ?", branchID)
	}
	if err := query.Order("sku ASC").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}
