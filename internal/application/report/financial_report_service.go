package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/catalog"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/ledger"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/report"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/sales"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/shared"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/domain/workshop"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FinancialReportService computes reconciled financial summaries for
// the reporting surfaces. It fetches the period's records concurrently
// from the repositories, runs the pure summary engine over them and
// maps the result to response shapes. Summaries of fully-closed periods
// may be served from cache.
type FinancialReportService struct {
	saleRepo      sales.Repository
	workOrderRepo workshop.Repository
	partRepo      catalog.Repository
	ledgerRepo    ledger.Repository

	cache    SummaryCache
	cacheTTL time.Duration
	rules    ledger.ClassificationRules
	vatRate  decimal.Decimal
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// Option is a functional option for FinancialReportService
type Option func(*FinancialReportService)

// WithCache enables read-through caching of closed-period summaries
func WithCache(cache SummaryCache, ttl time.Duration) Option {
	return func(s *FinancialReportService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithClassificationRules overrides the default ledger classification
func WithClassificationRules(rules ledger.ClassificationRules) Option {
	return func(s *FinancialReportService) {
		s.rules = rules
	}
}

// WithVATRate sets the flat VAT rate used for the ex-VAT revenue
// estimate. The divisor is policy, not accounting fact; it only shapes
// the response field, never the engine's figures.
func WithVATRate(rate decimal.Decimal) Option {
	return func(s *FinancialReportService) {
		if rate.IsPositive() {
			s.vatRate = rate
		}
	}
}

// WithLocation sets the time zone used for daily grouping
func WithLocation(loc *time.Location) Option {
	return func(s *FinancialReportService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock overrides the clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *FinancialReportService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewFinancialReportService creates a new FinancialReportService
func NewFinancialReportService(
	saleRepo sales.Repository,
	workOrderRepo workshop.Repository,
	partRepo catalog.Repository,
	ledgerRepo ledger.Repository,
	logger *zap.Logger,
	opts ...Option,
) *FinancialReportService {
	s := &FinancialReportService{
		saleRepo:      saleRepo,
		workOrderRepo: workOrderRepo,
		partRepo:      partRepo,
		ledgerRepo:    ledgerRepo,
		rules:         ledger.DefaultClassificationRules(),
		vatRate:       decimal.NewFromFloat(0.10),
		location:      time.Local,
		now:           time.Now,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// FinancialSummaryResponse is the reporting API shape of one summary.
// Amounts are float64 at this boundary; all arithmetic happened on
// decimals inside the engine.
type FinancialSummaryResponse struct {
	BranchID    uuid.UUID `json:"branch_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	SalesRevenue     float64 `json:"sales_revenue"`
	SalesCost        float64 `json:"sales_cost"`
	WorkOrderRevenue float64 `json:"work_order_revenue"`
	WorkOrderCost    float64 `json:"work_order_cost"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCost        float64 `json:"total_cost"`
	TotalProfit      float64 `json:"total_profit"`
	OtherIncome      float64 `json:"other_income"`
	OtherExpense     float64 `json:"other_expense"`
	RefundAmount     float64 `json:"refund_amount"`
	CombinedRevenue  float64 `json:"combined_revenue"`
	NetProfit        float64 `json:"net_profit"`

	// CombinedRevenueExVAT divides combined revenue by (1 + VAT rate).
	// Flat-rate estimate for the tax view, not an accounting fact.
	CombinedRevenueExVAT float64 `json:"combined_revenue_ex_vat"`

	SalesCount        int64 `json:"sales_count"`
	WorkOrdersCount   int64 `json:"work_orders_count"`
	OrderCount        int64 `json:"order_count"`
	SkippedWorkOrders int64 `json:"skipped_work_orders"`
}

// DailyFiguresResponse is one day of the daily breakdown
type DailyFiguresResponse struct {
	Date             time.Time `json:"date"`
	SalesRevenue     float64   `json:"sales_revenue"`
	WorkOrderRevenue float64   `json:"work_order_revenue"`
	Revenue          float64   `json:"revenue"`
	Cost             float64   `json:"cost"`
	Profit           float64   `json:"profit"`
	SalesCount       int64     `json:"sales_count"`
	WorkOrdersCount  int64     `json:"work_orders_count"`
}

// GetFinancialSummary returns the reconciled summary of one branch for
// [start, end]
func (s *FinancialReportService) GetFinancialSummary(ctx context.Context, branchID uuid.UUID, start, end time.Time) (*FinancialSummaryResponse, error) {
	if start.After(end) {
		return nil, shared.ErrInvalidPeriod
	}
	if cached, ok := s.cachedSummary(ctx, branchID, start, end); ok {
		return cached, nil
	}

	input, err := s.loadInput(ctx, branchID, start, end)
	if err != nil {
		return nil, err
	}

	summary, err := report.Summarize(*input)
	if err != nil {
		return nil, err
	}
	if summary.SkippedWorkOrders > 0 {
		s.logger.Warn("work orders without accounting date skipped from summary",
			zap.String("branch_id", branchID.String()),
			zap.Int64("skipped", summary.SkippedWorkOrders),
		)
	}

	resp := s.toSummaryResponse(summary)
	s.storeSummary(ctx, branchID, start, end, resp)
	return resp, nil
}

// GetDailyBreakdown returns per-day figures for the period, empty days
// omitted
func (s *FinancialReportService) GetDailyBreakdown(ctx context.Context, branchID uuid.UUID, start, end time.Time) ([]DailyFiguresResponse, error) {
	if start.After(end) {
		return nil, shared.ErrInvalidPeriod
	}
	input, err := s.loadInput(ctx, branchID, start, end)
	if err != nil {
		return nil, err
	}

	days, err := report.DailyBreakdown(*input, s.location)
	if err != nil {
		return nil, err
	}

	responses := make([]DailyFiguresResponse, len(days))
	for i, d := range days {
		responses[i] = DailyFiguresResponse{
			Date:             d.Date,
			SalesRevenue:     toFloat64(d.SalesRevenue),
			WorkOrderRevenue: toFloat64(d.WorkOrderRevenue),
			Revenue:          toFloat64(d.Revenue),
			Cost:             toFloat64(d.Cost),
			Profit:           toFloat64(d.Profit),
			SalesCount:       d.SalesCount,
			WorkOrdersCount:  d.WorkOrdersCount,
		}
	}
	return responses, nil
}

// loadInput fetches the four record sets concurrently. Each fetch is
// independent and context-cancellable; the first failure cancels the
// rest. The engine itself never does I/O.
func (s *FinancialReportService) loadInput(ctx context.Context, branchID uuid.UUID, start, end time.Time) (*report.SummarizeInput, error) {
	input := &report.SummarizeInput{
		BranchID:    branchID,
		PeriodStart: start,
		PeriodEnd:   end,
		Rules:       s.rules,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.saleRepo.ListByBranchAndPeriod(gctx, branchID, start, end)
		if err != nil {
			return fmt.Errorf("load sales: %w", err)
		}
		input.Sales = records
		return nil
	})
	g.Go(func() error {
		records, err := s.workOrderRepo.ListByBranchAndPeriod(gctx, branchID, start, end)
		if err != nil {
			return fmt.Errorf("load work orders: %w", err)
		}
		input.WorkOrders = records
		return nil
	})
	g.Go(func() error {
		parts, err := s.partRepo.ListByBranch(gctx, branchID)
		if err != nil {
			return fmt.Errorf("load parts: %w", err)
		}
		input.Costs = catalog.NewCostLookup(parts)
		return nil
	})
	g.Go(func() error {
		entries, err := s.ledgerRepo.ListByBranchAndPeriod(gctx, branchID, start, end)
		if err != nil {
			return fmt.Errorf("load ledger entries: %w", err)
		}
		input.Entries = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return input, nil
}

func (s *FinancialReportService) toSummaryResponse(summary *report.FinancialSummary) *FinancialSummaryResponse {
	exVAT := summary.CombinedRevenue.Div(decimal.NewFromInt(1).Add(s.vatRate))
	return &FinancialSummaryResponse{
		BranchID:             summary.BranchID,
		PeriodStart:          summary.PeriodStart,
		PeriodEnd:            summary.PeriodEnd,
		SalesRevenue:         toFloat64(summary.SalesRevenue),
		SalesCost:            toFloat64(summary.SalesCost),
		WorkOrderRevenue:     toFloat64(summary.WorkOrderRevenue),
		WorkOrderCost:        toFloat64(summary.WorkOrderCost),
		TotalRevenue:         toFloat64(summary.TotalRevenue),
		TotalCost:            toFloat64(summary.TotalCost),
		TotalProfit:          toFloat64(summary.TotalProfit),
		OtherIncome:          toFloat64(summary.OtherIncome),
		OtherExpense:         toFloat64(summary.OtherExpense),
		RefundAmount:         toFloat64(summary.RefundAmount),
		CombinedRevenue:      toFloat64(summary.CombinedRevenue),
		NetProfit:            toFloat64(summary.NetProfit),
		CombinedRevenueExVAT: toFloat64(exVAT.Round(2)),
		SalesCount:           summary.SalesCount,
		WorkOrdersCount:      summary.WorkOrdersCount,
		OrderCount:           summary.OrderCount,
		SkippedWorkOrders:    summary.SkippedWorkOrders,
	}
}

// cachedSummary serves a closed-period summary from cache. Periods that
// are still open are always recomputed; cache failures fall through to
// recomputation.
func (s *FinancialReportService) cachedSummary(ctx context.Context, branchID uuid.UUID, start, end time.Time) (*FinancialSummaryResponse, bool) {
	if s.cache == nil || !s.periodClosed(end) {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, summaryCacheKey(branchID, start, end))
	if err != nil || raw == nil {
		return nil, false
	}
	var resp FinancialSummaryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.logger.Warn("discarding undecodable cached summary", zap.Error(err))
		return nil, false
	}
	return &resp, true
}

func (s *FinancialReportService) storeSummary(ctx context.Context, branchID uuid.UUID, start, end time.Time, resp *FinancialSummaryResponse) {
	if s.cache == nil || !s.periodClosed(end) {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, summaryCacheKey(branchID, start, end), raw, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache summary", zap.Error(err))
	}
}

func (s *FinancialReportService) periodClosed(end time.Time) bool {
	return end.Before(s.now())
}

func summaryCacheKey(branchID uuid.UUID, start, end time.Time) string {
	return fmt.Sprintf("report:financial-summary:%s:%d:%d", branchID, start.UnixMilli(), end.UnixMilli())
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
