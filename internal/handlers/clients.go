package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/actions"
	"github.com/ohcard-dev/ohcard/internal/queries"
	"github.com/ohcard-dev/ohcard/internal/utils"
)

func ListClients(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	clients, err := queries.GetClientsForUser(actor.User.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, clients)
}

func CreateClient(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var in actions.ClientInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	client, err := actions.CreateClient(actor, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, client)
}

func UpdateClient(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	clientID, err := utils.GetClientID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var in actions.ClientInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	client, err := actions.UpdateClient(actor, clientID, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

func GetClientSessions(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	clientID, err := utils.GetClientID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessions, err := queries.GetClientSessions(actor.User.ID, clientID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

func GetClientTags(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	clientID, err := utils.GetClientID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, err := queries.GetClientTags(actor.User.ID, clientID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}
