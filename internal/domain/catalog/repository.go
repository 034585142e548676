package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines read access to the parts catalog
type Repository interface {
	// ListByBranch returns the parts of one branch, used to build the
	// branch cost lookup.
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]Part, error)
}
