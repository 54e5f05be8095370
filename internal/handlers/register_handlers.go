package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	swaggerFiles "github.com/swaggo/files"

	"github.com/Monique-199/BankingApplication/cmd/docs"
	"github.com/Monique-199/BankingApplication/internal/core/services"
	"github.com/Monique-199/BankingApplication/internal/middleware"
	"github.com/Monique-199/BankingApplication/internal/platform/config"
)

// accountNumberRule validates the 10-digit account number format
// (4-digit year followed by 6 digits).
func accountNumberRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Services bundles the service layer for route registration.
type Services struct {
	Account   *services.AccountService
	Ledger    *services.LedgerService
	Auth      *services.AuthService
	Statement *services.StatementService
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs Services) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accno", accountNumberRule)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, svcs)
	setupAPIV1Routes(r, cfg, svcs)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public routes: login (rate limited per IP)
// and account creation, which necessarily precedes having a token.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, svcs Services) {
	ah := newAuthHandler(svcs.Auth)
	ach := newAccountHandler(svcs.Account)

	// 5 login attempts per minute and IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(limitermem.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), ah.login)
	}

	r.POST("/api/v1/accounts", ach.createAccount)
}

// setupAPIV1Routes configures the JWT-protected /api/v1 group.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, svcs Services) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	lh := newLedgerHandler(svcs.Ledger)
	accounts := v1.Group("/accounts")
	{
		accounts.GET("/balance", lh.balanceInquiry)
		accounts.GET("/name", lh.nameInquiry)
		accounts.POST("/credit", lh.creditAccount)
		accounts.POST("/debit", lh.debitAccount)
		accounts.POST("/transfer", lh.transfer)
	}

	sh := newStatementHandler(svcs.Statement)
	v1.GET("/statements", sh.getStatement)
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
