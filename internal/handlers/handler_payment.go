package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	decimals       int32
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade, decimals int32) *paymentHandler {
	return &paymentHandler{paymentService: ps, decimals: decimals}
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, decimals int32) {
	h := newPaymentHandler(paymentService, decimals)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("/:id", h.getPayment)
		payments.POST("/:id/finalize", h.finalizePayment)
	}
}

// createPayment godoc
// @Summary Create a draft payment
// @Description Creates a draft receipt or disbursement. A linked invoice supplies the reference and tracking code when they are omitted.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Linked invoice not found"
// @Failure 500 {object} map[string]string "Failed to create payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "Failed to create payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment, h.decimals))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment, h.decimals))
}

// finalizePayment godoc
// @Summary Post a payment
// @Description Moves a draft payment to posted with its ledger entry and audit record
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path int true "Payment ID"
// @Param   body body dto.FinalizeRequest false "Client timestamp"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Posting period is closed"
// @Failure 500 {object} map[string]string "Failed to post payment"
// @Security BearerAuth
// @Router /payments/{id}/finalize [post]
func (h *paymentHandler) finalizePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizeRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.FinalizePayment(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, "Failed to post payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment, h.decimals))
}
