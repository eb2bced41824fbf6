package handlers

import (
	"github.com/SscSPs/bookkeeping_core/cmd/docs"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	v1.GET("/accounts", listChartOfAccounts)
	registerProductRoutes(v1, service.Product)
	registerPersonRoutes(v1, service.Person)
	registerInvoiceRoutes(v1, service.Invoice, cfg.CurrencyDecimals)
	registerPaymentRoutes(v1, service.Payment, cfg.CurrencyDecimals)
	registerLedgerRoutes(v1, service.Ledger, cfg.CurrencyDecimals)
	registerFinancialYearRoutes(v1, service.FinancialYear, cfg.DefaultCalendar, cfg.CurrencyDecimals)
	registerReportingRoutes(v1, service.Reporting, cfg.Location, cfg.CurrencyDecimals)
	registerAuditRoutes(v1, service.Audit)
	registerVerificationRoutes(v1, service.Verification)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
