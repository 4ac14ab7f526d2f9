package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohcard-dev/ohcard/internal/actions"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/ohcard-dev/ohcard/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	DashboardPage = "/dashboard"
	SignInPage    = "/sign-in"
	SignUpPage    = "/sign-up"
)

func userResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// fail answers a form post with a redirect back to page and anything else with JSON.
func fail(ctx *gin.Context, page string, err error) {
	if isFormPost(ctx) {
		redirectError(ctx, page, err)
		return
	}
	respondError(ctx, err)
}

func SignUp(ctx *gin.Context) {
	var in actions.SignUpInput

	if err := decode(ctx, &in); err != nil {
		fail(ctx, SignUpPage, err)
		return
	}

	user, client, err := actions.SignUp(in, ctx.ClientIP())

	if err != nil {
		fail(ctx, SignUpPage, err)
		return
	}

	if err := auth.SetSession(ctx, user.ID); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to issue session")
		fail(ctx, SignUpPage, err)
		return
	}

	if isFormPost(ctx) {
		ctx.Redirect(http.StatusSeeOther, DashboardPage)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":      userResponse(*user),
		"client_id": client.ID,
	})
}

func SignIn(ctx *gin.Context) {
	var in actions.SignInInput

	if err := decode(ctx, &in); err != nil {
		fail(ctx, SignInPage, err)
		return
	}

	user, err := actions.SignIn(in, ctx.ClientIP())

	if err != nil {
		fail(ctx, SignInPage, err)
		return
	}

	if err := auth.SetSession(ctx, user.ID); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to issue session")
		fail(ctx, SignInPage, err)
		return
	}

	if isFormPost(ctx) {
		ctx.Redirect(http.StatusSeeOther, DashboardPage)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": userResponse(*user)})
}

// SignOut always clears the cookie; the activity entry is only written for a
// resolved session.
func SignOut(ctx *gin.Context) {
	if user, err := utils.GetCurrentUser(ctx); err == nil {
		if err := actions.SignOut(actions.Actor{User: user, IP: ctx.ClientIP()}); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to record sign out")
		}
	}

	auth.ClearSession(ctx)

	if isFormPost(ctx) {
		ctx.Redirect(http.StatusSeeOther, SignInPage)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
