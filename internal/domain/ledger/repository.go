package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines read access to cash ledger entries. Entries are
// branch-scoped at fetch time; downstream consumers only filter by
// period.
type Repository interface {
	ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]Entry, error)
}
