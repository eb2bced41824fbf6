package handlers

import (
	"net/http"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// listChartOfAccounts godoc
// @Summary List the chart of accounts
// @Description Returns the fixed set of ledger accounts in report order
// @Tags accounts
// @Produce json
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /accounts [get]
func listChartOfAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ChartOfAccounts())
}
