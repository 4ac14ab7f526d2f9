package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/queries"
)

// ListActivity returns the caller's ten most recent activity entries.
func ListActivity(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	logs, err := queries.GetActivityLogs(actor.User.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, logs)
}
