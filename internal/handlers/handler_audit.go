package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditChainSvc
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditChainSvc) {
	h := &auditHandler{auditService: auditService}

	audit := rg.Group("/audit")
	{
		audit.POST("/entries", h.appendEntry)
		audit.GET("/:entityType/:entityID/verify", h.verifyChain)
		audit.GET("/:entityType/:entityID/proof/:entryID", h.exportProof)
	}
}

// appendEntry godoc
// @Summary Append an audit entry
// @Description Appends a snapshot to the hash chain of an entity
// @Tags audit
// @Accept  json
// @Produce  json
// @Param   entry body dto.AppendAuditEntryRequest true "Audit entry"
// @Success 201 {object} dto.AuditEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /audit/entries [post]
func (h *auditHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AppendAuditEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendAuditEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.auditService.Append(c.Request.Context(), req.EntityType, req.EntityID, req.Action, req.Snapshot)
	if err != nil {
		writeServiceError(c, err, "Failed to append audit entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAuditEntryResponse(entry))
}

// verifyChain godoc
// @Summary Verify an audit chain
// @Description Recomputes every hash of an entity chain. A broken chain is reported in the body, not as an error status.
// @Tags audit
// @Produce  json
// @Param   entityType path string true "Entity type"
// @Param   entityID path string true "Entity ID"
// @Success 200 {object} dto.VerifyChainResponse
// @Security BearerAuth
// @Router /audit/{entityType}/{entityID}/verify [get]
func (h *auditHandler) verifyChain(c *gin.Context) {
	entityType, entityID := c.Param("entityType"), c.Param("entityID")
	result, err := h.auditService.VerifyChain(c.Request.Context(), entityType, entityID)
	if err != nil {
		writeServiceError(c, err, "Failed to verify audit chain")
		return
	}
	if !result.Valid {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Audit chain verification failed",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("message", result.Message))
	}
	c.JSON(http.StatusOK, dto.ToVerifyChainResponse(entityType, entityID, result))
}

// exportProof godoc
// @Summary Export an audit proof
// @Description Returns one entry with the verification status of its whole chain
// @Tags audit
// @Produce  json
// @Param   entityType path string true "Entity type"
// @Param   entityID path string true "Entity ID"
// @Param   entryID path int true "Audit entry ID"
// @Success 200 {object} domain.AuditProof
// @Failure 404 {object} map[string]string "Entry not found in chain"
// @Security BearerAuth
// @Router /audit/{entityType}/{entityID}/proof/{entryID} [get]
func (h *auditHandler) exportProof(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}
	proof, err := h.auditService.ExportProof(c.Request.Context(), c.Param("entityType"), c.Param("entityID"), entryID)
	if err != nil {
		writeServiceError(c, err, "Failed to export audit proof")
		return
	}
	c.JSON(http.StatusOK, proof)
}
