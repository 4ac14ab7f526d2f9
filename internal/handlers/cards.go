package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/actions"
	"github.com/ohcard-dev/ohcard/internal/queries"
	"github.com/ohcard-dev/ohcard/internal/utils"
)

func ListDecks(ctx *gin.Context) {
	decks, err := queries.ListDecks()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, decks)
}

func GetDeckCards(ctx *gin.Context) {
	deckID, err := utils.GetDeckID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards, err := queries.GetDeckCards(deckID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cards)
}

func ListTemplates(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	templates, err := queries.ListTemplates(actor.User.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, templates)
}

func CreateTemplate(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var in actions.CreateTemplateInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	template, err := actions.CreateTemplate(actor, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, template)
}
