package actions

import (
	"errors"
	"strings"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"gorm.io/gorm"
)

type SignInInput struct {
	Email    string `json:"email" form:"email" binding:"required,email,min=3,max=255"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=100"`
}

type SignUpInput struct {
	Email    string `json:"email" form:"email" binding:"required,email,max=255"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=100"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignIn checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func SignIn(in SignInInput, ip string) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)

	if err := Validate(&in); err != nil {
		return nil, err
	}

	var user models.User

	if err := db.DB.Where("email = ?", in.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, failed("look up user", err)
	}

	if !auth.ComparePasswords(in.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if err := recordActivity(user.ID, nil, types.ActivitySignIn, ip); err != nil {
		return nil, err
	}

	return &user, nil
}

// SignUp creates the user and their default client profile. The two inserts
// are independent statements.
func SignUp(in SignUpInput, ip string) (*models.User, *models.Client, error) {
	in.Email = normalizeEmail(in.Email)

	if err := Validate(&in); err != nil {
		return nil, nil, err
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", in.Email).First(&existingUser).Error

	if err == nil {
		return nil, nil, ErrSignUpFailed
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, failed("check existing user", err)
	}

	passwordHash, err := auth.HashPassword(in.Password)

	if err != nil {
		return nil, nil, failed("hash password", err)
	}

	user := models.User{
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         types.RoleUser,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrSignUpFailed
		}
		return nil, nil, failed("create user", err)
	}

	client := models.Client{
		Nickname:      strings.SplitN(in.Email, "@", 2)[0],
		ContactInfo:   "",
		ContactMethod: types.ContactWeChat,
		UserID:        user.ID,
	}

	if err := db.DB.Create(&client).Error; err != nil {
		return nil, nil, failed("create default client", err)
	}

	if err := recordActivity(user.ID, &client.ID, types.ActivitySignUp, ip); err != nil {
		return nil, nil, err
	}

	return &user, &client, nil
}

func SignOut(actor Actor) error {
	return recordActivity(actor.User.ID, nil, types.ActivitySignOut, actor.IP)
}
