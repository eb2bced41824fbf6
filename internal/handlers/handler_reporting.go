package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	loc              *time.Location
	decimals         int32
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, loc *time.Location, decimals int32) *reportingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingHandler{
		reportingService: rs,
		loc:              loc,
		decimals:         decimals,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location, decimals int32) {
	h := newReportingHandler(reportingService, loc, decimals)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/party-turnover/:partyID", h.getPartyTurnover)
	}
}

// endOfDay is the last instant of the given calendar day.
func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// parseDateQuery reads a YYYY-MM-DD query value in the business location.
func (h *reportingHandler) parseDateQuery(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.DefaultQuery(name, def.In(h.loc).Format(dateLayout))
	day, err := time.ParseInLocation(dateLayout, raw, h.loc)
	if err != nil {
		logger.Warn("Invalid date format", slog.String(name, raw), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report including every entry up to the end of the given day
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := h.parseDateQuery(c, "asOf", h.now())
	if !ok {
		return
	}

	logger = logger.With(slog.String("asOf", asOf.Format(dateLayout)))
	logger.Info("Received request to generate trial balance report")

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), endOfDay(asOf))
	if err != nil {
		writeServiceError(c, err, "Failed to generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOf, h.decimals))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a period, ignoring year-end closing entries
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	now := h.now().In(h.loc)
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.loc)

	from, ok := h.parseDateQuery(c, "fromDate", firstDayOfMonth)
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(c, "toDate", now)
	if !ok {
		return
	}
	if from.After(to) {
		logger.Warn("Invalid date range", slog.String("fromDate", from.Format(dateLayout)), slog.String("toDate", to.Format(dateLayout)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be before or equal to toDate"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, endOfDay(to))
	if err != nil {
		writeServiceError(c, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, from, to, h.decimals))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet as of the end of the given day
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := h.parseDateQuery(c, "asOf", h.now())
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), endOfDay(asOf))
	if err != nil {
		writeServiceError(c, err, "Failed to generate balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated successfully",
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOf, h.decimals))
}

// parseOptionalDateQuery is parseDateQuery for bounds that stay open when absent.
func (h *reportingHandler) parseOptionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	if c.Query(name) == "" {
		return nil, true
	}
	day, ok := h.parseDateQuery(c, name, time.Time{})
	if !ok {
		return nil, false
	}
	return &day, true
}

// getPartyTurnover godoc
// @Summary Generate party turnover report
// @Description Sums the finalized invoices and posted payments of one person. Missing dates leave the period open.
// @Tags reports
// @Produce json
// @Param partyID path string true "Person ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PartyTurnoverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/party-turnover/{partyID} [get]
func (h *reportingHandler) getPartyTurnover(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	from, ok := h.parseOptionalDateQuery(c, "fromDate")
	if !ok {
		return
	}
	to, ok := h.parseOptionalDateQuery(c, "toDate")
	if !ok {
		return
	}
	if from != nil && to != nil && from.After(*to) {
		logger.Warn("Invalid date range", slog.String("fromDate", from.Format(dateLayout)), slog.String("toDate", to.Format(dateLayout)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be before or equal to toDate"})
		return
	}

	var until *time.Time
	if to != nil {
		end := endOfDay(*to)
		until = &end
	}
	report, err := h.reportingService.PartyTurnover(c.Request.Context(), partyID, from, until)
	if err != nil {
		writeServiceError(c, err, "Failed to generate party turnover report")
		return
	}

	logger.Info("Party turnover report generated successfully", slog.String("party_id", partyID))
	c.JSON(http.StatusOK, dto.ToPartyTurnoverResponse(report, from, to, h.decimals))
}
