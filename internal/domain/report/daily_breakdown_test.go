package report

import (
	"testing"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/sales"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/shared"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/workshop"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyBreakdown(t *testing.T) {
	branchID := uuid.New()
	loc := time.FixedZone("ICT", 7*3600)

	t.Run("invalid period is rejected", func(t *testing.T) {
		_, err := DailyBreakdown(SummarizeInput{
			PeriodStart: monthEnd,
			PeriodEnd:   monthStart,
		}, loc)
		assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
	})

	t.Run("groups activity by local calendar day", func(t *testing.T) {
		day5Morning := time.Date(2025, 4, 5, 8, 0, 0, 0, loc)
		day5Evening := time.Date(2025, 4, 5, 19, 30, 0, 0, loc)
		day9 := time.Date(2025, 4, 9, 10, 0, 0, 0, loc)

		input := SummarizeInput{
			BranchID:    branchID,
			PeriodStart: monthStart,
			PeriodEnd:   monthEnd,
			Sales: []sales.Sale{
				completedSale(branchID, day5Morning, 300000,
					sales.SaleItem{Quantity: vnd(1), UnitCostPrice: vnd(100000)},
				),
				completedSale(branchID, day5Evening, 200000),
			},
			WorkOrders: []workshop.WorkOrder{
				paidWorkOrder(branchID, day9, 500000,
					workshop.PartUsage{Quantity: vnd(2), UnitCostPrice: vnd(50000)},
				),
			},
		}

		days, err := DailyBreakdown(input, loc)
		require.NoError(t, err)
		require.Len(t, days, 2, "empty days are omitted")

		assert.Equal(t, time.Date(2025, 4, 5, 0, 0, 0, 0, loc), days[0].Date)
		assert.True(t, days[0].Revenue.Equal(vnd(500000)))
		assert.True(t, days[0].Cost.Equal(vnd(100000)))
		assert.True(t, days[0].Profit.Equal(vnd(400000)))
		assert.Equal(t, int64(2), days[0].SalesCount)
		assert.Equal(t, int64(0), days[0].WorkOrdersCount)

		assert.Equal(t, time.Date(2025, 4, 9, 0, 0, 0, 0, loc), days[1].Date)
		assert.True(t, days[1].Revenue.Equal(vnd(500000)))
		assert.True(t, days[1].Cost.Equal(vnd(100000)))
		assert.True(t, days[1].Profit.Equal(vnd(400000)))
		assert.Equal(t, int64(1), days[1].WorkOrdersCount)
	})

	t.Run("work orders group by accounting date not creation date", func(t *testing.T) {
		created := time.Date(2025, 4, 2, 9, 0, 0, 0, loc)
		paid := time.Date(2025, 4, 20, 16, 0, 0, 0, loc)
		order := paidWorkOrder(branchID, paid, 400000)
		order.CreatedDate = &created

		days, err := DailyBreakdown(SummarizeInput{
			BranchID:    branchID,
			PeriodStart: monthStart,
			PeriodEnd:   monthEnd,
			WorkOrders:  []workshop.WorkOrder{order},
		}, loc)
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, loc), days[0].Date)
	})

	t.Run("timestamps near midnight land on the local day", func(t *testing.T) {
		// 2025-04-06 23:30 ICT is 2025-04-06 16:30 UTC
		lateSale := time.Date(2025, 4, 6, 16, 30, 0, 0, time.UTC)
		days, err := DailyBreakdown(SummarizeInput{
			BranchID:    branchID,
			PeriodStart: monthStart,
			PeriodEnd:   monthEnd,
			Sales:       []sales.Sale{completedSale(branchID, lateSale, 100000)},
		}, loc)
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, time.Date(2025, 4, 6, 0, 0, 0, 0, loc), days[0].Date)
	})

	t.Run("undateable and cancelled records are omitted", func(t *testing.T) {
		undateable := workshop.WorkOrder{
			ID:            uuid.New(),
			BranchID:      branchID,
			Status:        workshop.WorkOrderStatusCompleted,
			PaymentStatus: workshop.PaymentStatusPaid,
			TotalPaid:     vnd(100000),
		}
		cancelled := completedSale(branchID, time.Date(2025, 4, 3, 10, 0, 0, 0, loc), 50000)
		cancelled.Status = sales.SaleStatusCancelled

		days, err := DailyBreakdown(SummarizeInput{
			BranchID:    branchID,
			PeriodStart: monthStart,
			PeriodEnd:   monthEnd,
			Sales:       []sales.Sale{cancelled},
			WorkOrders:  []workshop.WorkOrder{undateable},
		}, loc)
		require.NoError(t, err)
		assert.Empty(t, days)
	})
}
