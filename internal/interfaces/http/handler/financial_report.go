package handler

import (
	"time"

	reportapp "github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/application/report"
	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// FinancialReportHandler handles financial reporting API endpoints
type FinancialReportHandler struct {
	BaseHandler
	service  *reportapp.FinancialReportService
	location *time.Location
}

// NewFinancialReportHandler creates a new FinancialReportHandler. Dates
// in query parameters are interpreted in the given location.
func NewFinancialReportHandler(service *reportapp.FinancialReportService, location *time.Location) *FinancialReportHandler {
	if location == nil {
		location = time.UTC
	}
	return &FinancialReportHandler{
		service:  service,
		location: location,
	}
}

// RegisterRoutes registers report routes on the API group
func (h *FinancialReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/financial-summary", h.GetFinancialSummary)
		reports.GET("/financial-summary/daily", h.GetDailyBreakdown)
	}
}

// PeriodFilterRequest defines the filter shared by report queries.
// Dates are calendar days; the end date is inclusive.
type PeriodFilterRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	BranchID  string `form:"branch_id" binding:"omitempty,uuid"`
}

// GetFinancialSummary returns the financial summary for a period
func (h *FinancialReportHandler) GetFinancialSummary(c *gin.Context) {
	var req PeriodFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	start, end, branchID, ok := h.parseFilter(c, req)
	if !ok {
		return
	}

	summary, err := h.service.GetFinancialSummary(c.Request.Context(), branchID, start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetDailyBreakdown returns per-day figures for a period
func (h *FinancialReportHandler) GetDailyBreakdown(c *gin.Context) {
	var req PeriodFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	start, end, branchID, ok := h.parseFilter(c, req)
	if !ok {
		return
	}

	days, err := h.service.GetDailyBreakdown(c.Request.Context(), branchID, start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, days)
}

// parseFilter converts the request into period bounds and a branch id,
// writing the error response itself when the filter is invalid.
func (h *FinancialReportHandler) parseFilter(c *gin.Context, req PeriodFilterRequest) (start, end time.Time, branchID uuid.UUID, ok bool) {
	start, err := time.ParseInLocation(dateLayout, req.StartDate, h.location)
	if err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidPeriod), dto.ErrCodeInvalidPeriod, "start_date must be a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, uuid.Nil, false
	}

	endDay, err := time.ParseInLocation(dateLayout, req.EndDate, h.location)
	if err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidPeriod), dto.ErrCodeInvalidPeriod, "end_date must be a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, uuid.Nil, false
	}
	// End date is inclusive: extend to the last instant of that day.
	end = endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	if req.BranchID != "" {
		branchID, err = uuid.Parse(req.BranchID)
		if err != nil {
			h.BadRequest(c, "branch_id must be a UUID")
			return time.Time{}, time.Time{}, uuid.Nil, false
		}
	}

	return start, end, branchID, true
}
