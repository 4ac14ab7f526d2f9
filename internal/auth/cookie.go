package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

var (
	cookieDomain string
	cookieSecure = true
)

func ConfigureCookie(domain string, secure bool) {
	cookieDomain = domain
	cookieSecure = secure
}

// SetSession issues a fresh token for userID and stores it in the session cookie.
func SetSession(ctx *gin.Context, userID uint) error {
	token, err := GenerateSessionToken(userID)

	if err != nil {
		return err
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   cookieDomain,
		MaxAge:   int(sessionTTL.Seconds()),
		Secure:   cookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func ClearSession(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain,
		MaxAge:   -1,
		Secure:   cookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
