package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/handlers"
	"github.com/ohcard-dev/ohcard/internal/metrics"
	"github.com/ohcard-dev/ohcard/internal/middleware"
	"github.com/ohcard-dev/ohcard/internal/types"
)

// NewRouter builds the HTTP API. authLimiter throttles sign-in and sign-up;
// nil disables throttling.
func NewRouter(authLimiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	throttle := func(ctx *gin.Context) { ctx.Next() }
	if authLimiter != nil {
		throttle = authLimiter.Handler()
	}

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/sign-up", throttle, handlers.SignUp)
			authGroup.POST("/sign-in", throttle, handlers.SignIn)
			authGroup.POST("/sign-out", middleware.OptionalAuth(), handlers.SignOut)
		}

		protected := api.Group("", middleware.AuthMiddleware())
		{
			protected.GET("/ws", handlers.ActivityFeed)

			protected.GET("/user", handlers.GetAccount)
			protected.PATCH("/user", handlers.UpdateAccount)
			protected.DELETE("/user", handlers.DeleteAccount)
			protected.PUT("/user/password", handlers.UpdatePassword)

			protected.GET("/clients", handlers.ListClients)
			protected.POST("/clients", handlers.CreateClient)
			protected.PATCH("/clients/:client_id", handlers.UpdateClient)
			protected.GET("/clients/:client_id/sessions", handlers.GetClientSessions)
			protected.GET("/clients/:client_id/tags", handlers.GetClientTags)

			protected.POST("/sessions", handlers.CreateSession)
			protected.GET("/sessions/:session_id", handlers.GetSession)
			protected.PUT("/sessions/:session_id/cards", handlers.SaveCardArrangement)
			protected.POST("/sessions/:session_id/notes", handlers.AddSessionNote)

			protected.GET("/cases", handlers.FindCases)
			protected.GET("/activity", handlers.ListActivity)

			protected.GET("/decks", handlers.ListDecks)
			protected.GET("/decks/:deck_id/cards", handlers.GetDeckCards)

			protected.GET("/templates", handlers.ListTemplates)
			protected.POST("/templates", handlers.CreateTemplate)
		}
	}

	return r
}
