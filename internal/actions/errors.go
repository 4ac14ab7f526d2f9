package actions

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrSignUpFailed       = errors.New("Failed to create user. Please try again.")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrIncorrectPassword  = errors.New("Current password is incorrect")
	ErrPasswordUnchanged  = errors.New("New password must be different from the current password")
	ErrPasswordMismatch   = errors.New("New password and confirmation password do not match")
	ErrNotFound           = errors.New("not found")

	// ErrActionFailed hides persistence failures from callers; the cause is logged.
	ErrActionFailed = errors.New("action failed")
)

func failed(op string, err error) error {
	logrus.WithError(err).WithField("op", op).Error("Action failed")
	return fmt.Errorf("%s: %w", op, ErrActionFailed)
}
