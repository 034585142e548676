package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderStatus represents the workshop status of a repair order
type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "open"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusDelivered  WorkOrderStatus = "delivered"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// PaymentStatus represents how far a work order has been paid
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// WorkOrder represents a repair work order. Rows migrated from the
// legacy system may lack a payment date, and the oldest ones lack a
// creation date as well; AccountingDate treats those cases explicitly.
type WorkOrder struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BranchID      uuid.UUID       `gorm:"type:uuid;index" json:"branch_id"`
	Status        WorkOrderStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	Refunded      bool            `gorm:"not null;default:false" json:"refunded"`
	PaymentDate   *time.Time      `gorm:"index" json:"payment_date,omitempty"`
	CreatedDate   *time.Time      `json:"created_date,omitempty"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total"`
	TotalPaid     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_paid"`
	PartsUsed     []PartUsage     `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE" json:"parts_used"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (WorkOrder) TableName() string {
	return "work_orders"
}

// PartUsage is one part consumed by a work order. UnitCostPrice is the
// cost frozen when the part was issued to the order; zero means none
// was recorded.
type PartUsage struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WorkOrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"work_order_id"`
	PartID        uuid.UUID       `gorm:"type:uuid;index" json:"part_id"`
	SKU           string          `gorm:"type:varchar(50)" json:"sku"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	UnitCostPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"unit_cost_price"`
}

// TableName returns the table name for GORM
func (PartUsage) TableName() string {
	return "work_order_parts"
}

// AccountingDate returns the date the order is attributed to for
// reporting: the payment date when present, else the creation date.
// ok is false when neither exists, which happens on the oldest legacy
// rows; such orders are skipped by reporting, not errored.
func (w WorkOrder) AccountingDate() (time.Time, bool) {
	if w.PaymentDate != nil && !w.PaymentDate.IsZero() {
		return *w.PaymentDate, true
	}
	if w.CreatedDate != nil && !w.CreatedDate.IsZero() {
		return *w.CreatedDate, true
	}
	return time.Time{}, false
}

// IsPaid reports whether the order has any recorded payment: a paid or
// partial payment status, or a positive paid amount regardless of
// status (legacy rows carry amounts without a status).
func (w WorkOrder) IsPaid() bool {
	if w.PaymentStatus == PaymentStatusPaid || w.PaymentStatus == PaymentStatusPartial {
		return true
	}
	return w.TotalPaid.IsPositive()
}

// CountsTowardRevenue reports whether the order contributes revenue:
// not cancelled, not refunded, and paid
func (w WorkOrder) CountsTowardRevenue() bool {
	return w.Status != WorkOrderStatusCancelled && !w.Refunded && w.IsPaid()
}

// RevenueAmount returns the amount the order contributes to revenue:
// the paid amount, falling back to the order total when no payment
// amount was recorded
func (w WorkOrder) RevenueAmount() decimal.Decimal {
	if w.TotalPaid.IsPositive() {
		return w.TotalPaid
	}
	return w.Total
}
