package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/ohcard-dev/ohcard/internal/actions"
	"github.com/ohcard-dev/ohcard/internal/utils"
	"gorm.io/gorm"
)

const maxFormMemory = 8 << 20

var errMalformedBody = errors.New("malformed request body")

func isFormPost(ctx *gin.Context) bool {
	switch ctx.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// decode fills in from a JSON or form body. Validation is left to the action,
// which normalizes input first.
func decode(ctx *gin.Context, in interface{}) error {
	if isFormPost(ctx) {
		var err error
		if ctx.ContentType() == binding.MIMEMultipartPOSTForm {
			err = ctx.Request.ParseMultipartForm(maxFormMemory)
		} else {
			err = ctx.Request.ParseForm()
		}

		if err != nil {
			return errMalformedBody
		}

		if err := binding.MapFormWithTag(in, ctx.Request.PostForm, "form"); err != nil {
			return errMalformedBody
		}
		return nil
	}

	if ctx.Request.Body == nil {
		return nil
	}

	if err := json.NewDecoder(ctx.Request.Body).Decode(in); err != nil && !errors.Is(err, io.EOF) {
		return errMalformedBody
	}

	return nil
}

func currentActor(ctx *gin.Context) (actions.Actor, bool) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return actions.Actor{}, false
	}

	return actions.Actor{User: user, IP: ctx.ClientIP()}, true
}

func errorStatus(err error) int {
	var verr *actions.ValidationError

	switch {
	case errors.As(err, &verr), errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, actions.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, actions.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, actions.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, actions.ErrSignUpFailed),
		errors.Is(err, actions.ErrIncorrectPassword),
		errors.Is(err, actions.ErrPasswordUnchanged),
		errors.Is(err, actions.ErrPasswordMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) gin.H {
	var verr *actions.ValidationError

	switch status := errorStatus(err); {
	case errors.As(err, &verr):
		return gin.H{"error": "Invalid request", "fields": verr.Fields}
	case errors.Is(err, errMalformedBody):
		return gin.H{"error": "Invalid request", "fields": gin.H{}}
	case status == http.StatusNotFound:
		return gin.H{"error": "Not found"}
	case status == http.StatusInternalServerError:
		return gin.H{"error": "Internal server error"}
	default:
		return gin.H{"error": err.Error()}
	}
}

// respondError writes the JSON error for err. Unexpected errors are attached
// to the context so the request logger reports them.
func respondError(ctx *gin.Context, err error) {
	status := errorStatus(err)

	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
	}

	ctx.JSON(status, errorBody(err))
}

// redirectError sends a form post back to page with the error message.
func redirectError(ctx *gin.Context, page string, err error) {
	message, _ := errorBody(err)["error"].(string)
	ctx.Redirect(http.StatusSeeOther, page+"?"+url.Values{"error": {message}}.Encode())
}
