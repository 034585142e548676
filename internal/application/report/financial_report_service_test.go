package report

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/catalog"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/ledger"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/sales"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/shared"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/workshop"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSaleRepository is a mock implementation of sales.Repository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]sales.Sale, error) {
	args := m.Called(ctx, branchID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

// MockWorkOrderRepository is a mock implementation of workshop.Repository
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]workshop.WorkOrder, error) {
	args := m.Called(ctx, branchID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workshop.WorkOrder), args.Error(1)
}

// MockPartRepository is a mock implementation of catalog.Repository
type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]catalog.Part, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Part), args.Error(1)
}

// MockLedgerRepository is a mock implementation of ledger.Repository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListByBranchAndPeriod(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]ledger.Entry, error) {
	args := m.Called(ctx, branchID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

// memoryCache is a trivial SummaryCache used by tests
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.sets++
	return nil
}

type serviceFixture struct {
	saleRepo      *MockSaleRepository
	workOrderRepo *MockWorkOrderRepository
	partRepo      *MockPartRepository
	ledgerRepo    *MockLedgerRepository
	service       *FinancialReportService
}

func newFixture(opts ...Option) *serviceFixture {
	f := &serviceFixture{
		saleRepo:      new(MockSaleRepository),
		workOrderRepo: new(MockWorkOrderRepository),
		partRepo:      new(MockPartRepository),
		ledgerRepo:    new(MockLedgerRepository),
	}
	f.service = NewFinancialReportService(
		f.saleRepo, f.workOrderRepo, f.partRepo, f.ledgerRepo,
		zap.NewNop(), opts...,
	)
	return f
}

func (f *serviceFixture) expectEmptyFetches() {
	f.saleRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]sales.Sale{}, nil)
	f.workOrderRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]workshop.WorkOrder{}, nil)
	f.partRepo.On("ListByBranch", mock.Anything, mock.Anything).Return([]catalog.Part{}, nil)
	f.ledgerRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]ledger.Entry{}, nil)
}

var (
	aprilStart = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	aprilEnd   = time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC)
)

func TestGetFinancialSummary(t *testing.T) {
	branchID := uuid.New()

	t.Run("combines repository data through the engine", func(t *testing.T) {
		f := newFixture()
		soldAt := aprilStart.Add(5 * 24 * time.Hour)
		paidAt := aprilStart.Add(10 * 24 * time.Hour)

		f.saleRepo.On("ListByBranchAndPeriod", mock.Anything, branchID, aprilStart, aprilEnd).Return([]sales.Sale{
			{
				ID: uuid.New(), BranchID: branchID, SoldAt: soldAt,
				Status: sales.SaleStatusCompleted, Total: decimal.NewFromInt(1000000),
				Items: []sales.SaleItem{{Quantity: decimal.NewFromInt(2), UnitCostPrice: decimal.NewFromInt(200000)}},
			},
		}, nil)
		f.workOrderRepo.On("ListByBranchAndPeriod", mock.Anything, branchID, aprilStart, aprilEnd).Return([]workshop.WorkOrder{
			{
				ID: uuid.New(), BranchID: branchID,
				Status: workshop.WorkOrderStatusCompleted, PaymentStatus: workshop.PaymentStatusPaid,
				PaymentDate: &paidAt, TotalPaid: decimal.NewFromInt(500000),
				PartsUsed: []workshop.PartUsage{{Quantity: decimal.NewFromInt(1), UnitCostPrice: decimal.NewFromInt(100000)}},
			},
		}, nil)
		f.partRepo.On("ListByBranch", mock.Anything, branchID).Return([]catalog.Part{}, nil)
		f.ledgerRepo.On("ListByBranchAndPeriod", mock.Anything, branchID, aprilStart, aprilEnd).Return([]ledger.Entry{
			{OccurredAt: soldAt, Direction: ledger.DirectionIncome, Category: "thu khac", Amount: decimal.NewFromInt(200000)},
			{OccurredAt: soldAt, Direction: ledger.DirectionExpense, Category: "dien nuoc", Amount: decimal.NewFromInt(50000)},
		}, nil)

		resp, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)

		assert.InDelta(t, 1500000, resp.TotalRevenue, 0.001)
		assert.InDelta(t, 500000, resp.TotalCost, 0.001)
		assert.InDelta(t, 1000000, resp.TotalProfit, 0.001)
		assert.InDelta(t, 1700000, resp.CombinedRevenue, 0.001)
		assert.InDelta(t, 1150000, resp.NetProfit, 0.001)
		assert.Equal(t, int64(2), resp.OrderCount)
	})

	t.Run("ex-VAT revenue divides by one plus rate", func(t *testing.T) {
		f := newFixture(WithVATRate(decimal.NewFromFloat(0.10)))
		soldAt := aprilStart.Add(24 * time.Hour)
		f.saleRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]sales.Sale{
			{ID: uuid.New(), BranchID: branchID, SoldAt: soldAt, Status: sales.SaleStatusCompleted, Total: decimal.NewFromInt(1100000)},
		}, nil)
		f.workOrderRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]workshop.WorkOrder{}, nil)
		f.partRepo.On("ListByBranch", mock.Anything, mock.Anything).Return([]catalog.Part{}, nil)
		f.ledgerRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]ledger.Entry{}, nil)

		resp, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)
		assert.InDelta(t, 1000000, resp.CombinedRevenueExVAT, 0.01)
	})

	t.Run("inverted period is rejected without touching repositories", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilEnd, aprilStart)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
		f.saleRepo.AssertNotCalled(t, "ListByBranchAndPeriod")
	})

	t.Run("repository failure surfaces wrapped", func(t *testing.T) {
		f := newFixture()
		boom := errors.New("connection reset")
		f.saleRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
		f.workOrderRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]workshop.WorkOrder{}, nil)
		f.partRepo.On("ListByBranch", mock.Anything, mock.Anything).Return([]catalog.Part{}, nil)
		f.ledgerRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]ledger.Entry{}, nil)

		_, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "load sales")
	})

	t.Run("closed periods are served from cache on the second call", func(t *testing.T) {
		cache := newMemoryCache()
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		f := newFixture(
			WithCache(cache, time.Hour),
			WithClock(func() time.Time { return now }),
		)
		f.expectEmptyFetches()

		first, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)
		second, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, cache.sets)
		f.saleRepo.AssertNumberOfCalls(t, "ListByBranchAndPeriod", 1)
	})

	t.Run("open periods bypass the cache", func(t *testing.T) {
		cache := newMemoryCache()
		now := aprilStart.Add(15 * 24 * time.Hour) // mid-period
		f := newFixture(
			WithCache(cache, time.Hour),
			WithClock(func() time.Time { return now }),
		)
		f.expectEmptyFetches()

		_, err := f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)
		_, err = f.service.GetFinancialSummary(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)

		assert.Zero(t, cache.sets)
		f.saleRepo.AssertNumberOfCalls(t, "ListByBranchAndPeriod", 2)
	})
}

func TestGetDailyBreakdown(t *testing.T) {
	branchID := uuid.New()

	t.Run("maps engine days to responses", func(t *testing.T) {
		f := newFixture(WithLocation(time.UTC))
		day1 := time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC)
		day2 := time.Date(2025, 4, 7, 15, 0, 0, 0, time.UTC)

		f.saleRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]sales.Sale{
			{ID: uuid.New(), BranchID: branchID, SoldAt: day1, Status: sales.SaleStatusCompleted, Total: decimal.NewFromInt(250000)},
			{ID: uuid.New(), BranchID: branchID, SoldAt: day2, Status: sales.SaleStatusCompleted, Total: decimal.NewFromInt(400000)},
		}, nil)
		f.workOrderRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]workshop.WorkOrder{}, nil)
		f.partRepo.On("ListByBranch", mock.Anything, mock.Anything).Return([]catalog.Part{}, nil)
		f.ledgerRepo.On("ListByBranchAndPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]ledger.Entry{}, nil)

		days, err := f.service.GetDailyBreakdown(context.Background(), branchID, aprilStart, aprilEnd)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), days[0].Date)
		assert.InDelta(t, 250000, days[0].Revenue, 0.001)
		assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), days[1].Date)
		assert.InDelta(t, 400000, days[1].Revenue, 0.001)
	})

	t.Run("invalid period is rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.GetDailyBreakdown(context.Background(), branchID, aprilEnd, aprilStart)
		assert.ErrorIs(t, err, shared.ErrInvalidPeriod)
	})
}
