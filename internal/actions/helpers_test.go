package actions

import (
	"testing"

	"github.com/ohcard-dev/ohcard/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testPassword = "s3cret-password"

func signUp(t *testing.T, email string) Actor {
	t.Helper()

	user, _, err := SignUp(SignUpInput{Email: email, Password: testPassword}, "127.0.0.1")
	require.NoError(t, err)

	return Actor{User: *user, IP: "127.0.0.1"}
}

func intPtr(v int) *int { return &v }

func placement(cardID uint, x, y int) CardPlacement {
	return CardPlacement{CardID: cardID, PositionX: intPtr(x), PositionY: intPtr(y)}
}

func setup(t *testing.T) {
	t.Helper()
	testutil.SetupDB(t)
}
