package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	redisStore "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	ExerciceSvc    ports.ExerciceService
	LedgerSvc      ports.LedgerService
	FreezeSvc      ports.FreezeService
	QRTransferSvc  ports.QRTransferService
	TransferSvc    ports.TransferService
	BusinessSvc    ports.BusinessPaymentService
	ShareSvc       ports.FamilyShareService
	AnalyticsSvc   ports.AnalyticsService
	SessionSvc     ports.SessionService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	sessionHandler := NewSessionHandler(deps.SessionSvc)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.ExerciceSvc)
	exerciceHandler := NewExerciceHandler(deps.ExerciceSvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	freezeHandler := NewFreezeHandler(deps.FreezeSvc)
	qrHandler := NewQRTransferHandler(deps.QRTransferSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)
	businessHandler := NewBusinessPaymentHandler(deps.BusinessSvc)
	shareHandler := NewFamilyShareHandler(deps.ShareSvc)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsSvc)

	v1 := r.Group("/api/v1")

	v1.POST("/sessions", rl("sessions"), sessionHandler.Open)

	wallets := v1.Group("/wallets")
	{
		wallets.GET("", rl("reads"), walletHandler.List)
		wallets.POST("", rl("writes"), walletHandler.Create)
		wallets.GET("/:id", rl("reads"), walletHandler.Get)
		wallets.PATCH("/:id", rl("writes"), walletHandler.Update)
		wallets.DELETE("/:id", rl("admin"), walletHandler.Delete)
		wallets.GET("/:id/categories", rl("reads"), walletHandler.ListCategories)
		wallets.POST("/:id/categories", rl("writes"), walletHandler.AddCategory)
		wallets.GET("/:id/opening-balance", rl("reads"), walletHandler.OpeningBalance)
	}

	exercices := v1.Group("/exercices")
	{
		exercices.GET("", rl("reads"), exerciceHandler.List)
		exercices.GET("/current", rl("reads"), exerciceHandler.Current)
		exercices.POST("", rl("admin"), exerciceHandler.Create)
		exercices.POST("/next", rl("admin"), exerciceHandler.OpenNext)
		exercices.POST("/:year/close", rl("admin"), exerciceHandler.Close)
	}

	v1.DELETE("/transactions/:id/proof", rl("writes"), ledgerHandler.ClearProof)
	v1.POST("/freezes/:id/unfreeze", rl("writes"), freezeHandler.Unfreeze)
	v1.POST("/freezes/:id/spend", rl("writes"), freezeHandler.Spend)
	v1.POST("/qr-transfers/:id/cancel", rl("qr"), qrHandler.Cancel)
	v1.POST("/qr-transfers/:id/confirm", rl("qr"), qrHandler.Confirm)
	v1.POST("/transfers", rl("writes"), transferHandler.Transfer)
	v1.POST("/business-payments/requests", rl("qr"), businessHandler.CreateRequest)
	v1.POST("/family-shares/export", rl("qr"), shareHandler.Export)
	v1.DELETE("/family-shares/expired", rl("admin"), shareHandler.Purge)
	v1.GET("/analytics/summary", rl("reads"), analyticsHandler.Summary)

	// --- Session-bound routes (active wallet + year) ---
	// SessionAuth runs before the limiter so limits key on the wallet.
	sess := v1.Group("/session", middleware.SessionAuth(deps.SessionSvc))
	{
		sess.GET("/balances", rl("reads"), ledgerHandler.Balances)
		sess.POST("/audit", rl("admin"), ledgerHandler.Audit)
		sess.GET("/transactions", rl("reads"), ledgerHandler.List)
		sess.POST("/transactions", rl("writes"), ledgerHandler.Record)

		sess.GET("/freezes", rl("reads"), freezeHandler.List)
		sess.POST("/freezes", rl("writes"), freezeHandler.Freeze)

		sess.GET("/qr-transfers", rl("reads"), qrHandler.List)
		sess.POST("/qr-transfers", rl("qr"), qrHandler.Generate)
		sess.POST("/qr-transfers/receive", rl("qr"), qrHandler.Receive)

		sess.POST("/business-payments/pay", rl("qr"), businessHandler.Pay)
		sess.POST("/business-payments/confirm", rl("qr"), businessHandler.Confirm)

		sess.GET("/family-shares", rl("reads"), shareHandler.List)
		sess.POST("/family-shares", rl("qr"), shareHandler.Ingest)
	}

	return r
}
