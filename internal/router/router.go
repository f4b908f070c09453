// Package router assembles the HTTP API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "finagent/internal/docs" // Import swagger docs
	"finagent/internal/handlers"
	"finagent/internal/marketdata"
	"finagent/internal/middleware"
	"finagent/internal/services"
)

// Deps holds everything the routes need. Agents may be nil, in which case
// the agent endpoints answer 503.
type Deps struct {
	DB           handlers.Pinger
	Users        services.UserServicer
	Assets       services.AssetServicer
	Transactions services.TransactionServicer
	Dividends    services.DividendServicer
	Analysis     services.AnalysisServicer
	AgentActions services.AgentActionServicer
	Audit        services.AuditServicer
	Agents       handlers.AgentRunner
}

// NewDeps builds the domain services over db. The caller sets Agents.
func NewDeps(db *gorm.DB, pinger handlers.Pinger, prices marketdata.PriceSource) Deps {
	assets := services.NewAssetService(db)
	transactions := services.NewTransactionService(db, assets)
	dividends := services.NewDividendService(db, assets)
	return Deps{
		DB:           pinger,
		Users:        services.NewUserService(db),
		Assets:       assets,
		Transactions: transactions,
		Dividends:    dividends,
		Analysis:     services.NewAnalysisService(assets, transactions, dividends, prices),
		AgentActions: services.NewAgentActionService(db),
		Audit:        services.NewAuditService(db),
	}
}

// New returns the gin engine serving the API.
func New(d Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(d.Users, d.Audit)
	assetHandler := handlers.NewAssetHandler(d.Assets, d.Audit)
	transactionHandler := handlers.NewTransactionHandler(d.Transactions, d.Audit)
	dividendHandler := handlers.NewDividendHandler(d.Dividends, d.Audit)
	analysisHandler := handlers.NewAnalysisHandler(d.Analysis)
	agentHandler := handlers.NewAgentHandler(d.Agents, d.AgentActions)
	agentActionHandler := handlers.NewAgentActionHandler(d.AgentActions)
	healthHandler := handlers.NewHealthHandler(d.DB)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	assets := protected.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:ticker", assetHandler.GetAsset)
	assets.PUT("/:ticker", assetHandler.UpdateAsset)
	assets.DELETE("/:ticker", assetHandler.DeleteAsset)
	assets.POST("/:ticker/transactions", transactionHandler.CreateTransaction)
	assets.GET("/:ticker/transactions", transactionHandler.ListTransactions)
	assets.POST("/:ticker/dividends", dividendHandler.CreateDividend)
	assets.GET("/:ticker/dividends", dividendHandler.ListDividends)
	assets.GET("/:ticker/analysis", analysisHandler.GetAssetAnalysis)

	transactions := protected.Group("/transactions")
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	dividends := protected.Group("/dividends")
	dividends.GET("/:id", dividendHandler.GetDividend)
	dividends.PUT("/:id", dividendHandler.UpdateDividend)
	dividends.DELETE("/:id", dividendHandler.DeleteDividend)

	protected.GET("/portfolio/analysis", analysisHandler.GetPortfolioAnalysis)

	agent := protected.Group("/agent/query")
	agent.POST("/router", agentHandler.QueryRouter)
	agent.POST("/:agent_name", agentHandler.QueryAgent)

	actions := protected.Group("/agent-actions")
	actions.POST("", agentActionHandler.CreateAgentAction)
	actions.GET("", agentActionHandler.ListAgentActions)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
