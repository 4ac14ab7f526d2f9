package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/actions"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/queries"
)

// GetAccount returns the current user together with their default client profile.
func GetAccount(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	account, err := queries.GetUserWithClient(actor.User.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, account)
}

func UpdateAccount(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var in actions.UpdateAccountInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	user, err := actions.UpdateAccount(actor, in)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Account updated successfully",
		"user":    userResponse(*user),
	})
}

func UpdatePassword(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var in actions.UpdatePasswordInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	if err := actions.UpdatePassword(actor, in); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func DeleteAccount(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var in actions.DeleteAccountInput

	if err := decode(ctx, &in); err != nil {
		respondError(ctx, err)
		return
	}

	if err := actions.DeleteAccount(actor, in); err != nil {
		respondError(ctx, err)
		return
	}

	auth.ClearSession(ctx)

	if isFormPost(ctx) {
		ctx.Redirect(http.StatusSeeOther, SignInPage)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
