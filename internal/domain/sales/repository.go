package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines read access to recorded sales
type Repository interface {
	// ListByBranchAndPeriod returns sales of one branch whose sale
	// timestamp lies in [start, end], items preloaded. Legacy rows
	// without a branch id are included.
	ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]Sale, error)
}
