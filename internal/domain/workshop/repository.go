package workshop

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines read access to repair work orders
type Repository interface {
	// ListByBranchAndPeriod returns work orders of one branch whose
	// accounting date (payment date, else creation date) lies in
	// [start, end], parts preloaded. Undateable legacy rows are also
	// returned so callers can count and log them.
	ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]WorkOrder, error)
}
