// Package queries holds the read side of the application. Every helper is
// scoped to the authenticated user; nothing here crosses tenants.
package queries

import (
	"errors"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentActivityLimit = 10

// GetUser resolves the user behind a session token. Any failure, including a
// soft-deleted account, yields nil.
func GetUser(sessionToken string) *models.User {
	userID, err := auth.VerifySessionToken(sessionToken)

	if err != nil {
		return nil
	}

	user, err := GetUserByID(userID)

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("user_id", userID).Warn("Error verifying user session")
		}
		return nil
	}

	return user
}

func GetUserByID(userID uint) (*models.User, error) {
	var user models.User

	if err := db.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

type userClientRow struct {
	UserID        uint
	Name          string
	Email         string
	Role          string
	ClientID      *uint
	Nickname      *string
	ContactInfo   *string
	ContactMethod *string
}

func (r userClientRow) toResponse() types.ClientWithUser {
	return types.ClientWithUser{
		User: types.UserResponse{
			ID:    r.UserID,
			Name:  r.Name,
			Email: r.Email,
			Role:  r.Role,
		},
		ClientID:      r.ClientID,
		Nickname:      r.Nickname,
		ContactInfo:   r.ContactInfo,
		ContactMethod: r.ContactMethod,
	}
}

func userClientQuery() *gorm.DB {
	return db.DB.Table("users").
		Select("users.id AS user_id, users.name, users.email, users.role, " +
			"clients.id AS client_id, clients.nickname, clients.contact_info, clients.contact_method").
		Where("users.deleted_at IS NULL")
}

// GetUserWithClient returns the user with their default (first) client profile.
func GetUserWithClient(userID uint) (*types.ClientWithUser, error) {
	var rows []userClientRow

	err := userClientQuery().
		Joins("LEFT JOIN clients ON clients.user_id = users.id").
		Where("users.id = ?", userID).
		Order("clients.id ASC").
		Limit(1).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	result := rows[0].toResponse()
	return &result, nil
}

func GetClientsForUser(userID uint) ([]types.ClientWithUser, error) {
	var rows []userClientRow

	err := userClientQuery().
		Joins("JOIN clients ON clients.user_id = users.id").
		Where("clients.user_id = ?", userID).
		Order("clients.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	clients := make([]types.ClientWithUser, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, row.toResponse())
	}

	return clients, nil
}

// GetActivityLogs returns the user's most recent activity, newest first.
func GetActivityLogs(userID uint) ([]types.ActivityLogEntry, error) {
	logs := []types.ActivityLogEntry{}

	err := db.DB.Table("activity_logs").
		Select("activity_logs.id, activity_logs.action, activity_logs.client_id, " +
			"activity_logs.timestamp, activity_logs.ip_address, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Where("activity_logs.user_id = ?", userID).
		Order("activity_logs.timestamp DESC, activity_logs.id DESC").
		Limit(recentActivityLimit).
		Scan(&logs).Error

	if err != nil {
		return nil, err
	}

	return logs, nil
}
