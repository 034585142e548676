package report

import (
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/catalog"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/ledger"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/sales"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/shared"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/workshop"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummarizeInput carries the fully-materialized records one summary is
// computed over. The engine is pure: it reads these snapshots, performs
// no I/O and mutates nothing, so identical inputs always produce
// identical output and concurrent calls are safe.
type SummarizeInput struct {
	BranchID    uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time

	Sales      []sales.Sale
	WorkOrders []workshop.WorkOrder
	Entries    []ledger.Entry

	// Costs resolves unit costs for line items without a frozen cost.
	// Nil behaves like an empty catalog.
	Costs *catalog.CostLookup

	// Rules classifies ledger categories. The zero value excludes
	// nothing and recognizes no refunds; production callers pass
	// ledger.DefaultClassificationRules().
	Rules ledger.ClassificationRules
}

// FinancialSummary is the reconciled revenue/cost/profit picture of one
// branch over one period. It is recomputed per request, never persisted.
type FinancialSummary struct {
	BranchID    uuid.UUID `json:"branch_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	SalesRevenue     decimal.Decimal `json:"sales_revenue"`
	SalesCost        decimal.Decimal `json:"sales_cost"`
	WorkOrderRevenue decimal.Decimal `json:"work_order_revenue"`
	WorkOrderCost    decimal.Decimal `json:"work_order_cost"`

	// Gross figures, before other income/expense.
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`

	// Cash ledger classification.
	OtherIncome  decimal.Decimal `json:"other_income"`
	OtherExpense decimal.Decimal `json:"other_expense"`
	RefundAmount decimal.Decimal `json:"refund_amount"`

	// Combined figures. Refunds reduce revenue, they are not expenses.
	CombinedRevenue decimal.Decimal `json:"combined_revenue"`
	NetProfit       decimal.Decimal `json:"net_profit"`

	SalesCount      int64 `json:"sales_count"`
	WorkOrdersCount int64 `json:"work_orders_count"`
	OrderCount      int64 `json:"order_count"`

	// SkippedWorkOrders counts orders dropped for lacking any usable
	// accounting date. Known legacy-data condition; the caller logs it.
	SkippedWorkOrders int64 `json:"skipped_work_orders"`

	// Filtered record lists, kept for drill-down views.
	FilteredSales      []sales.Sale         `json:"-"`
	FilteredWorkOrders []workshop.WorkOrder `json:"-"`
	FilteredEntries    []ledger.Entry       `json:"-"`
}

// Summarize reconciles sales, work orders and cash ledger entries into
// one financial summary for the period [PeriodStart, PeriodEnd], both
// bounds inclusive. Individual records that cannot be dated or
// attributed are excluded, never fatal; the only error condition is an
// inverted period, which is a caller bug and is reported as
// shared.ErrInvalidPeriod rather than silently repaired.
func Summarize(in SummarizeInput) (*FinancialSummary, error) {
	if in.PeriodStart.After(in.PeriodEnd) {
		return nil, shared.ErrInvalidPeriod
	}

	costs := in.Costs
	if costs == nil {
		costs = catalog.NewCostLookup(nil)
	}

	summary := &FinancialSummary{
		BranchID:    in.BranchID,
		PeriodStart: in.PeriodStart,
		PeriodEnd:   in.PeriodEnd,
	}

	for _, sale := range in.Sales {
		if !saleInScope(sale, in.BranchID, in.PeriodStart, in.PeriodEnd) {
			continue
		}
		summary.FilteredSales = append(summary.FilteredSales, sale)
		summary.SalesRevenue = summary.SalesRevenue.Add(sale.Total)
		summary.SalesCost = summary.SalesCost.Add(saleCost(sale, costs))
	}

	for _, order := range in.WorkOrders {
		inScope, dateable := workOrderInScope(order, in.BranchID, in.PeriodStart, in.PeriodEnd)
		if !dateable {
			summary.SkippedWorkOrders++
			continue
		}
		if !inScope {
			continue
		}
		summary.FilteredWorkOrders = append(summary.FilteredWorkOrders, order)
		summary.WorkOrderRevenue = summary.WorkOrderRevenue.Add(order.RevenueAmount())
		summary.WorkOrderCost = summary.WorkOrderCost.Add(workOrderCost(order, costs))
	}

	summary.TotalRevenue = summary.SalesRevenue.Add(summary.WorkOrderRevenue)
	summary.TotalCost = summary.SalesCost.Add(summary.WorkOrderCost)
	summary.TotalProfit = summary.TotalRevenue.Sub(summary.TotalCost)

	for _, entry := range in.Entries {
		if !inPeriod(entry.OccurredAt, in.PeriodStart, in.PeriodEnd) {
			continue
		}
		summary.FilteredEntries = append(summary.FilteredEntries, entry)

		switch entry.Direction {
		case ledger.DirectionIncome:
			if !in.Rules.IsIncomeExcluded(entry.Category) {
				summary.OtherIncome = summary.OtherIncome.Add(entry.Amount)
			}
		case ledger.DirectionExpense:
			if !entry.Amount.IsPositive() {
				continue
			}
			if in.Rules.IsRefund(entry.Category) {
				summary.RefundAmount = summary.RefundAmount.Add(entry.Amount)
				continue
			}
			if !in.Rules.IsExpenseExcluded(entry.Category) {
				summary.OtherExpense = summary.OtherExpense.Add(entry.Amount)
			}
		}
	}

	summary.CombinedRevenue = summary.TotalRevenue.Add(summary.OtherIncome).Sub(summary.RefundAmount)
	summary.NetProfit = summary.TotalProfit.
		Add(summary.OtherIncome).
		Sub(summary.RefundAmount).
		Sub(summary.OtherExpense)

	summary.SalesCount = int64(len(summary.FilteredSales))
	summary.WorkOrdersCount = int64(len(summary.FilteredWorkOrders))
	summary.OrderCount = summary.SalesCount + summary.WorkOrdersCount

	return summary, nil
}

// saleCost sums resolved part costs over the non-service lines of a
// sale. Service lines contribute zero cost on purpose: their cost, if
// any, is recorded as a ledger expense, and counting it here as well
// would double count.
func saleCost(sale sales.Sale, costs *catalog.CostLookup) decimal.Decimal {
	total := decimal.Zero
	for _, item := range sale.Items {
		if item.IsService {
			continue
		}
		unit := costs.ResolveUnitCost(item.PartID, item.SKU, item.UnitCostPrice)
		total = total.Add(unit.Mul(item.Quantity))
	}
	return total
}

// workOrderCost sums resolved part costs over the parts consumed by a
// work order. Labor and outsourcing are deliberately not subtracted
// here; they live in the cash ledger, same double-counting rule as
// saleCost.
func workOrderCost(order workshop.WorkOrder, costs *catalog.CostLookup) decimal.Decimal {
	total := decimal.Zero
	for _, part := range order.PartsUsed {
		unit := costs.ResolveUnitCost(part.PartID, part.SKU, part.UnitCostPrice)
		total = total.Add(unit.Mul(part.Quantity))
	}
	return total
}

func saleInScope(sale sales.Sale, branchID uuid.UUID, start, end time.Time) bool {
	if !branchMatches(sale.BranchID, branchID) {
		return false
	}
	if !sale.CountsTowardRevenue() {
		return false
	}
	return inPeriod(sale.SoldAt, start, end)
}

// workOrderInScope reports whether the order belongs in the summary.
// dateable is false only when the order has no usable accounting date;
// such orders are skipped wholesale regardless of other fields.
func workOrderInScope(order workshop.WorkOrder, branchID uuid.UUID, start, end time.Time) (inScope, dateable bool) {
	date, ok := order.AccountingDate()
	if !ok {
		return false, false
	}
	if !branchMatches(order.BranchID, branchID) {
		return false, true
	}
	if !order.CountsTowardRevenue() {
		return false, true
	}
	return inPeriod(date, start, end), true
}

// branchMatches applies branch filtering only when the record carries a
// branch id; legacy rows without one are kept.
func branchMatches(recordBranch, wantBranch uuid.UUID) bool {
	if recordBranch == uuid.Nil || wantBranch == uuid.Nil {
		return true
	}
	return recordBranch == wantBranch
}

// inPeriod checks the inclusive window [start, end]
func inPeriod(ts time.Time, start, end time.Time) bool {
	return !ts.Before(start) && !ts.After(end)
}
