package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecret(t *testing.T, ttl time.Duration) {
	t.Helper()

	previousSecret, previousTTL := jwtSecret, sessionTTL
	require.NoError(t, InitJWTSecret("test-secret", ttl))

	t.Cleanup(func() {
		jwtSecret, sessionTTL = previousSecret, previousTTL
	})
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, ComparePasswords("correct horse", hash))

	for _, wrong := range []string{"", "correct hors", "correct horse ", "Correct horse", "correct horsee"} {
		assert.False(t, ComparePasswords(wrong, hash), "password %q should not match", wrong)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	setSecret(t, time.Hour)

	token, err := GenerateSessionToken(42)
	require.NoError(t, err)

	userID, err := VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifySessionTokenRejectsExpired(t *testing.T) {
	setSecret(t, time.Hour)

	claims := SessionClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionTokenRejectsForeignSignature(t *testing.T) {
	setSecret(t, time.Hour)

	claims := SessionClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifySessionToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifySessionToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionTokenRequiresExpiry(t *testing.T) {
	setSecret(t, time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{UserID: 7}).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSetSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setSecret(t, 2*time.Hour)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	require.NoError(t, SetSession(ctx, 3))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((2 * time.Hour).Seconds()), cookie.MaxAge)

	userID, err := VerifySessionToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, uint(3), userID)
}
