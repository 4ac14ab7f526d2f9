package actions

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/queries"
	"github.com/ohcard-dev/ohcard/internal/types"
	"gorm.io/gorm"
)

type UpdateAccountInput struct {
	Name  string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" form:"email" binding:"required,email,max=255"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required,min=8,max=100"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required,min=8,max=100"`
}

type DeleteAccountInput struct {
	Password string `json:"password" form:"password" binding:"required,min=8,max=100"`
}

func UpdateAccount(actor Actor, in UpdateAccountInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)

	if err := Validate(&in); err != nil {
		return nil, err
	}

	user := actor.User

	if in.Email != user.Email {
		var existingUser models.User
		err := db.DB.Where("email = ? AND id != ?", in.Email, user.ID).First(&existingUser).Error
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, failed("check existing email", err)
		}
	}

	updates := map[string]interface{}{
		"name":  in.Name,
		"email": in.Email,
	}

	err := commitWithActivity(actor, types.ActivityUpdateAccount, func(tx *gorm.DB) (*uint, error) {
		return nil, tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, failed("update account", err)
	}

	user.Name = in.Name
	user.Email = in.Email

	return &user, nil
}

func UpdatePassword(actor Actor, in UpdatePasswordInput) error {
	if err := Validate(&in); err != nil {
		return err
	}

	if !auth.ComparePasswords(in.CurrentPassword, actor.User.PasswordHash) {
		return ErrIncorrectPassword
	}

	if in.CurrentPassword == in.NewPassword {
		return ErrPasswordUnchanged
	}

	if in.ConfirmPassword != in.NewPassword {
		return ErrPasswordMismatch
	}

	passwordHash, err := auth.HashPassword(in.NewPassword)

	if err != nil {
		return failed("hash password", err)
	}

	err = commitWithActivity(actor, types.ActivityUpdatePassword, func(tx *gorm.DB) (*uint, error) {
		return nil, tx.Model(&models.User{}).Where("id = ?", actor.User.ID).Update("password_hash", passwordHash).Error
	})

	if err != nil {
		return failed("update password", err)
	}

	return nil
}

// maxEmailLength matches the size of users.email.
const maxEmailLength = 255

// DeletedEmail is the address a soft-deleted account is renamed to, freeing
// the original for a new sign-up. Long addresses are cut so the result still
// fits the column; the id keeps it unique.
func DeletedEmail(email string, userID uint) string {
	suffix := fmt.Sprintf("-%d-deleted", userID)

	if limit := maxEmailLength - len(suffix); len(email) > limit {
		for limit > 0 && !utf8.RuneStart(email[limit]) {
			limit--
		}
		email = email[:limit]
	}

	return email + suffix
}

// DeleteAccount soft-deletes the acting user after re-checking the password.
func DeleteAccount(actor Actor, in DeleteAccountInput) error {
	if err := Validate(&in); err != nil {
		return err
	}

	user := actor.User

	if !auth.ComparePasswords(in.Password, user.PasswordHash) {
		return ErrIncorrectPassword
	}

	var clientID *uint

	profile, err := queries.GetUserWithClient(user.ID)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return failed("load client profile", err)
	}

	if profile != nil {
		clientID = profile.ClientID
	}

	var entry models.ActivityLog

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var err error

		if entry, err = logActivity(tx, user.ID, clientID, types.ActivityDeleteAccount, actor.IP); err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("email", DeletedEmail(user.Email, user.ID)).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, user.ID).Error
	})

	if err != nil {
		return failed("delete account", err)
	}

	announce(entry)
	return nil
}
