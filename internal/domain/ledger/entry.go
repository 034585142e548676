package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDirection represents the direction of a cash ledger entry
type EntryDirection string

const (
	DirectionIncome  EntryDirection = "income"
	DirectionExpense EntryDirection = "expense"
)

// IsValid returns true for a known direction
func (d EntryDirection) IsValid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// Entry represents one free-form cash ledger line recorded at a branch.
// Category is the raw label as entered by staff or migrated from the
// legacy system; it is only interpreted through Canonicalize.
// Expense amounts are stored positive by convention.
type Entry struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BranchID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	Direction  EntryDirection  `gorm:"type:varchar(10);not null" json:"direction"`
	Category   string          `gorm:"type:varchar(120);not null" json:"category"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount"`
	Note       string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "cash_ledger_entries"
}

// IsRealExpense reports whether the entry counts as money actually
// leaving the till. Zero or negative expense amounts come from legacy
// imports and are not counted.
func (e Entry) IsRealExpense() bool {
	return e.Direction == DirectionExpense && e.Amount.IsPositive()
}
