package persistence

import (
	"context"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLedgerRepository implements ledger.Repository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// ListByBranchAndPeriod returns cash ledger entries of one branch with
// an occurrence time in [start, end]. A nil branch id returns entries
// of every branch.
func (r *GormLedgerRepository) ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]ledger.Entry, error) {
	var entries []ledger.Entry
	query := r.db.WithContext(ctx).
		Where("occurred_at BETWEEN ? AND ?", start, end)
	if branchID != uuid.Nil {
		query = query.Where("branch_id = ?", branchID)
	}
	if err := query.Order("occurred_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
