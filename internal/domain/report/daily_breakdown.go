package report

import (
	"sort"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/catalog"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DailyFigures is one calendar day of reconciled sales and work-order
// activity. Days with no activity are omitted from breakdowns entirely.
type DailyFigures struct {
	Date             time.Time       `json:"date"`
	SalesRevenue     decimal.Decimal `json:"sales_revenue"`
	WorkOrderRevenue decimal.Decimal `json:"work_order_revenue"`
	Revenue          decimal.Decimal `json:"revenue"`
	Cost             decimal.Decimal `json:"cost"`
	Profit           decimal.Decimal `json:"profit"`
	SalesCount       int64           `json:"sales_count"`
	WorkOrdersCount  int64           `json:"work_orders_count"`
}

// DailyBreakdown groups the period's filtered sales and work orders by
// calendar day in loc and reconciles each day with the same rules as
// Summarize. Sales group by their sale timestamp, work orders by their
// accounting date. Cash ledger entries are not part of the daily view.
// Days are returned in ascending order; empty days are omitted.
func DailyBreakdown(in SummarizeInput, loc *time.Location) ([]DailyFigures, error) {
	if in.PeriodStart.After(in.PeriodEnd) {
		return nil, shared.ErrInvalidPeriod
	}
	if loc == nil {
		loc = time.Local
	}

	costs := in.Costs
	if costs == nil {
		costs = catalog.NewCostLookup(nil)
	}

	days := make(map[time.Time]*DailyFigures)

	for _, sale := range in.Sales {
		if !saleInScope(sale, in.BranchID, in.PeriodStart, in.PeriodEnd) {
			continue
		}
		day := figuresFor(days, sale.SoldAt, loc)
		day.SalesRevenue = day.SalesRevenue.Add(sale.Total)
		day.Cost = day.Cost.Add(saleCost(sale, costs))
		day.SalesCount++
	}

	for _, order := range in.WorkOrders {
		inScope, dateable := workOrderInScope(order, in.BranchID, in.PeriodStart, in.PeriodEnd)
		if !dateable || !inScope {
			continue
		}
		date, _ := order.AccountingDate()
		day := figuresFor(days, date, loc)
		day.WorkOrderRevenue = day.WorkOrderRevenue.Add(order.RevenueAmount())
		day.Cost = day.Cost.Add(workOrderCost(order, costs))
		day.WorkOrdersCount++
	}

	result := make([]DailyFigures, 0, len(days))
	for _, day := range days {
		day.Revenue = day.SalesRevenue.Add(day.WorkOrderRevenue)
		day.Profit = day.Revenue.Sub(day.Cost)
		result = append(result, *day)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func figuresFor(days map[time.Time]*DailyFigures, ts time.Time, loc *time.Location) *DailyFigures {
	local := ts.In(loc)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	day, ok := days[date]
	if !ok {
		day = &DailyFigures{
			Date:             date,
			SalesRevenue:     decimal.Zero,
			WorkOrderRevenue: decimal.Zero,
			Revenue:          decimal.Zero,
			Cost:             decimal.Zero,
			Profit:           decimal.Zero,
		}
		days[date] = day
	}
	return day
}
