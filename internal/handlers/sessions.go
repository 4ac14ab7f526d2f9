package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/actions"
	"github.com/ohcard-dev/ohcard/internal/queries"
	"github.com/ohcard-dev/ohcard/internal/utils"
)

func CreateSession(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var in actions.CreateSessionInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	session, err := actions.CreateSession(actor, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

func GetSession(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	sessionID, err := utils.GetSessionID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := queries.GetSession(actor.User.ID, sessionID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// SaveCardArrangement replaces the cards laid out on the session canvas.
func SaveCardArrangement(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	sessionID, err := utils.GetSessionID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var in actions.SaveCardArrangementInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	in.SessionID = sessionID

	cards, err := actions.SaveCardArrangement(actor, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Card arrangement saved",
		"cards":   cards,
	})
}

func AddSessionNote(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	sessionID, err := utils.GetSessionID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var in actions.AddSessionNoteInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	note, err := actions.AddSessionNote(actor, sessionID, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, note)
}

// FindCases lists sessions whose notes carry the keyword query parameter.
func FindCases(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	keyword := strings.TrimSpace(ctx.Query("keyword"))

	if keyword == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Keyword is required"})
		return
	}

	matches, err := queries.FindCasesByKeyword(actor.User.ID, keyword)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, matches)
}
