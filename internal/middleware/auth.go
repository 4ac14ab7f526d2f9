package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/queries"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/sirupsen/logrus"
)

func currentUser(ctx *gin.Context) *models.User {
	token, err := ctx.Cookie(auth.SessionCookie)

	if err != nil || token == "" {
		return nil
	}

	return queries.GetUser(token)
}

func setUser(ctx *gin.Context, user *models.User) {
	ctx.Set(types.ContextUserKey, *user)

	// Sliding expiry: reads push the session forward.
	if ctx.Request.Method == http.MethodGet {
		if err := auth.SetSession(ctx, user.ID); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to refresh session cookie")
		}
	}
}

// AuthMiddleware rejects requests without a valid session cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := currentUser(ctx)

		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		setUser(ctx, user)
		ctx.Next()
	}
}

// OptionalAuth resolves the session when present and never rejects.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user := currentUser(ctx); user != nil {
			setUser(ctx, user)
		}

		ctx.Next()
	}
}
