package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerReaderSvc
	decimals      int32
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc, decimals int32) {
	h := &ledgerHandler{ledgerService: ledgerService, decimals: decimals}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/entries", h.listEntries)
		ledger.GET("/balances/:account", h.getBalance)
	}
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists ledger entries in posting order, filtered by reference, tracking code or account
// @Tags ledger
// @Produce  json
// @Param refType query string false "Reference type" Enums(invoice, payment, closing, manual)
// @Param refID query int false "Reference ID"
// @Param trackingCode query string false "Tracking code"
// @Param account query string false "Account code on either side"
// @Param partyID query string false "Person ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries, h.decimals),
		NextToken: nextToken,
	})
}

// getBalance godoc
// @Summary Get an account balance
// @Description Debit-normal balance of one account, optionally as of an RFC3339 instant
// @Tags ledger
// @Produce  json
// @Param account path string true "Account code"
// @Param asOf query string false "Instant (RFC3339)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 404 {object} map[string]string "Unknown account"
// @Security BearerAuth
// @Router /ledger/balances/{account} [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	var asOf *time.Time
	if raw := c.Query("asOf"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf format. Use RFC3339"})
			return
		}
		asOf = &t
	}

	account := domain.AccountCode(c.Param("account"))
	balance, err := h.ledgerService.Balance(c.Request.Context(), account, asOf)
	if err != nil {
		writeServiceError(c, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		Account:      string(account),
		AsOf:         asOf,
		Balance:      balance,
		BalanceValue: utils.MinorToMajor(balance, h.decimals),
	})
}
