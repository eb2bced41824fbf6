package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financialYearHandler handles HTTP requests related to financial years.
type financialYearHandler struct {
	fyService       portssvc.FinancialYearSvcFacade
	defaultCalendar string
	decimals        int32
}

func registerFinancialYearRoutes(rg *gin.RouterGroup, fyService portssvc.FinancialYearSvcFacade, defaultCalendar string, decimals int32) {
	h := &financialYearHandler{fyService: fyService, defaultCalendar: defaultCalendar, decimals: decimals}

	years := rg.Group("/financial-years")
	{
		years.GET("", h.listFinancialYears)
		years.POST("", h.createFinancialYear)
		years.POST("/current", h.currentFinancialYear)
		years.GET("/:id", h.getFinancialYear)
		years.POST("/:id/close", h.closeFinancialYear)
	}
}

// listFinancialYears godoc
// @Summary List financial years
// @Tags financial-years
// @Produce  json
// @Success 200 {array} dto.FinancialYearResponse
// @Security BearerAuth
// @Router /financial-years [get]
func (h *financialYearHandler) listFinancialYears(c *gin.Context) {
	years, err := h.fyService.ListFinancialYears(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to list financial years")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialYearResponses(years, h.decimals))
}

// getFinancialYear godoc
// @Summary Get a financial year
// @Tags financial-years
// @Produce  json
// @Param   id path int true "Financial year ID"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} map[string]string "Financial year not found"
// @Security BearerAuth
// @Router /financial-years/{id} [get]
func (h *financialYearHandler) getFinancialYear(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fy, err := h.fyService.GetFinancialYear(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Failed to retrieve financial year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy, h.decimals))
}

// createFinancialYear godoc
// @Summary Create a financial year
// @Tags financial-years
// @Accept  json
// @Produce  json
// @Param   year body dto.CreateFinancialYearRequest true "Financial year"
// @Success 201 {object} dto.FinancialYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already taken"
// @Security BearerAuth
// @Router /financial-years [post]
func (h *financialYearHandler) createFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFinancialYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fy, err := h.fyService.CreateFinancialYear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "Failed to create financial year")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFinancialYearResponse(fy, h.decimals))
}

// currentFinancialYear godoc
// @Summary Get or create the current financial year
// @Description Returns the financial year for today, creating it on first use
// @Tags financial-years
// @Accept  json
// @Produce  json
// @Param   body body dto.CurrentFinancialYearRequest false "Calendar"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 400 {object} map[string]string "Unknown calendar"
// @Security BearerAuth
// @Router /financial-years/current [post]
func (h *financialYearHandler) currentFinancialYear(c *gin.Context) {
	var req dto.CurrentFinancialYearRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	calendar := req.Calendar
	if calendar == "" {
		calendar = h.defaultCalendar
	}

	fy, err := h.fyService.GetOrCreateCurrent(c.Request.Context(), calendar)
	if err != nil {
		writeServiceError(c, err, "Failed to resolve current financial year")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy, h.decimals))
}

// closeFinancialYear godoc
// @Summary Close a financial year
// @Description Posts closing entries, snapshots opening balances and locks the period. Closing a closed year returns it unchanged.
// @Tags financial-years
// @Produce  json
// @Param   id path int true "Financial year ID"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} map[string]string "Financial year not found"
// @Failure 500 {object} map[string]string "Failed to close financial year"
// @Security BearerAuth
// @Router /financial-years/{id}/close [post]
func (h *financialYearHandler) closeFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fy, err := h.fyService.CloseFinancialYear(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Failed to close financial year")
		return
	}
	logger.Info("Financial year closed", slog.Int64("financial_year_id", fy.ID))
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy, h.decimals))
}
