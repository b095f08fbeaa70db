package handler

import (
	"guild-wager-platform/internal/adapter/http/middleware"
	"guild-wager-platform/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AgentRouterDeps holds the dependencies for the agent process router.
type AgentRouterDeps struct {
	Wagers         WagerOperations
	Settlements    SettlementOperations
	TokenSvc       ports.TokenService
	OperatorKey    string
	InternalSecret string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupAgentRouter initialises the Gin engine for the agent process: the
// betting flow behind the internal secret, and the operator surface behind
// JWT.
func SetupAgentRouter(deps AgentRouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Betting flow, called by the chat frontend on behalf of its users.
	wagerHandler := NewWagerHandler(deps.Wagers)
	internal := r.Group("/internal", middleware.InternalAuth(deps.InternalSecret, deps.Logger))
	{
		internal.GET("/events/:id", wagerHandler.GetEvent)
		internal.POST("/events/:id/select", wagerHandler.SelectSlot)
		internal.POST("/events/:id/confirm", wagerHandler.ConfirmBet)
		internal.POST("/events/:id/bets", wagerHandler.PlaceBet)
		internal.POST("/events/:id/qualify", wagerHandler.Qualify)
	}

	// Operator surface.
	opsHandler := NewOpsHandler(deps.Wagers, deps.Settlements, deps.TokenSvc, deps.OperatorKey, deps.Logger)
	r.POST("/ops/login", opsHandler.Login)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	ops := r.Group("/ops", jwtAuth)
	{
		ops.POST("/events", opsHandler.CreateEvent)
		ops.GET("/events/:id", opsHandler.GetEvent)
		ops.POST("/events/:id/settle", opsHandler.Settle)
		ops.POST("/events/:id/cancel", opsHandler.Cancel)
		ops.POST("/events/:id/retry-refunds", opsHandler.RetryRefunds)
		ops.GET("/events/:id/qualifications", opsHandler.ListQualifications)
		ops.POST("/qualifications/:id/review", opsHandler.ReviewQualification)
	}

	return r
}

// LedgerRouterDeps holds the dependencies for the ledger service router.
type LedgerRouterDeps struct {
	GuildWallets   ports.GuildWalletRepository
	UserWallets    ports.UserWalletRepository
	Events         ports.EventRepository
	Bets           ports.BetRepository
	Qualifications ports.QualificationRepository
	Transactor     ports.DBTransactor
	Cipher         ports.SecretCipher
	InternalSecret string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupLedgerRouter initialises the Gin engine for the ledger service: the
// wallet and event sync surface behind the internal secret.
func SetupLedgerRouter(deps LedgerRouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	syncHandler := NewSyncHandler(
		deps.GuildWallets,
		deps.UserWallets,
		deps.Events,
		deps.Bets,
		deps.Qualifications,
		deps.Transactor,
		deps.Cipher,
		deps.Logger,
	)
	internal := r.Group("/internal", middleware.InternalAuth(deps.InternalSecret, deps.Logger))
	{
		internal.GET("/guild-wallet/:guildId", syncHandler.GetGuildWallet)
		internal.POST("/guild-wallet-sync", syncHandler.SyncGuildWallet)
		internal.GET("/user-wallet/:userId", syncHandler.GetUserWallet)
		internal.GET("/wager-event/:id", syncHandler.GetEvent)
		internal.POST("/wager-event-sync", syncHandler.SyncEvent)
	}

	return r
}
