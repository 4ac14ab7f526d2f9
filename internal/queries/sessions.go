package queries

import (
	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
)

// GetClient returns a client owned by userID, with its tags.
func GetClient(userID, clientID uint) (*models.Client, error) {
	var client models.Client

	err := db.DB.Preload("Tags").
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error

	if err != nil {
		return nil, err
	}

	return &client, nil
}

func GetClientSessions(userID, clientID uint) ([]models.Session, error) {
	if _, err := GetClient(userID, clientID); err != nil {
		return nil, err
	}

	sessions := []models.Session{}

	err := db.DB.Preload("Cards").
		Preload("SessionNotes").
		Where("client_id = ? AND user_id = ?", clientID, userID).
		Order("date DESC").
		Find(&sessions).Error

	return sessions, err
}

func GetClientTags(userID, clientID uint) ([]models.ClientTag, error) {
	if _, err := GetClient(userID, clientID); err != nil {
		return nil, err
	}

	tags := []models.ClientTag{}

	err := db.DB.Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&tags).Error

	return tags, err
}

func GetSession(userID, sessionID uint) (*models.Session, error) {
	var session models.Session

	err := db.DB.Preload("Cards").
		Preload("SessionNotes").
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// FindCasesByKeyword lists the user's sessions associated with keyword,
// strongest association first.
func FindCasesByKeyword(userID uint, keyword string) ([]types.CaseMatch, error) {
	matches := []types.CaseMatch{}

	err := db.DB.Table("case_associations").
		Select("sessions.id AS session_id, sessions.client_id, sessions.title, sessions.date, " +
			"case_associations.keyword, case_associations.strength").
		Joins("JOIN sessions ON sessions.id = case_associations.session_id").
		Where("sessions.user_id = ? AND case_associations.keyword = ?", userID, keyword).
		Order("case_associations.strength DESC, sessions.date DESC").
		Scan(&matches).Error

	return matches, err
}
