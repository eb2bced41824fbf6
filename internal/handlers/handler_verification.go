package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type verificationHandler struct {
	verificationService portssvc.VerificationCodeSvc
}

func registerVerificationRoutes(rg *gin.RouterGroup, verificationService portssvc.VerificationCodeSvc) {
	h := &verificationHandler{verificationService: verificationService}

	codes := rg.Group("/verification-codes")
	{
		codes.POST("", h.issueCode)
		codes.POST("/verify", h.verifyCode)
	}
}

// issueCode godoc
// @Summary Issue a verification code
// @Description Issues a six digit one-time code for a key, replacing any earlier code
// @Tags verification
// @Accept  json
// @Produce  json
// @Param   body body dto.IssueVerificationCodeRequest true "Key"
// @Success 201 {object} dto.VerificationCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /verification-codes [post]
func (h *verificationHandler) issueCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueVerificationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueVerificationCode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	code, err := h.verificationService.Issue(c.Request.Context(), req.Key)
	if err != nil {
		writeServiceError(c, err, "Failed to issue verification code")
		return
	}
	c.JSON(http.StatusCreated, dto.VerificationCodeResponse{Key: code.Key, Code: code.Code, ExpiresAt: code.ExpiresAt})
}

// verifyCode godoc
// @Summary Verify a code
// @Description Checks a code for a key. A correct code is consumed.
// @Tags verification
// @Accept  json
// @Produce  json
// @Param   body body dto.VerifyCodeRequest true "Key and code"
// @Success 200 {object} dto.VerifyCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /verification-codes/verify [post]
func (h *verificationHandler) verifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	valid, err := h.verificationService.Verify(c.Request.Context(), req.Key, req.Code)
	if err != nil {
		writeServiceError(c, err, "Failed to verify code")
		return
	}
	c.JSON(http.StatusOK, dto.VerifyCodeResponse{Valid: valid})
}
