package actions

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateSessionInput struct {
	ClientID uint   `json:"client_id" form:"client_id" binding:"required"`
	Title    string `json:"title" form:"title" binding:"required,min=1,max=100"`
	Notes    string `json:"notes" form:"notes"`
}

// CardPlacement positions one card on the canvas. Coordinates are pointers so
// that zero is a valid position while a missing value is still rejected.
type CardPlacement struct {
	CardID    uint   `json:"card_id" binding:"required"`
	PositionX *int   `json:"position_x" binding:"required"`
	PositionY *int   `json:"position_y" binding:"required"`
	Rotation  *int   `json:"rotation" binding:"omitempty,min=-360,max=360"`
	Notes     string `json:"notes"`
}

func (p CardPlacement) rotation() int {
	if p.Rotation == nil {
		return 0
	}
	return *p.Rotation
}

type SaveCardArrangementInput struct {
	SessionID uint            `json:"session_id" binding:"required"`
	Cards     []CardPlacement `json:"cards" binding:"max=200,dive"`
}

type AddSessionNoteInput struct {
	Content  string   `json:"content" form:"content" binding:"required"`
	Keywords []string `json:"keywords" form:"keywords" binding:"omitempty,max=30,dive,required,max=50"`
}

func ownedSession(userID, sessionID uint) (*models.Session, error) {
	var session models.Session

	if err := db.DB.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, failed("load session", err)
	}

	return &session, nil
}

// checkCardsExist rejects placements that reference cards missing from every deck.
func checkCardsExist(placements []CardPlacement) error {
	ids := make([]uint, 0, len(placements))
	seen := make(map[uint]bool, len(placements))

	for _, p := range placements {
		if !seen[p.CardID] {
			seen[p.CardID] = true
			ids = append(ids, p.CardID)
		}
	}

	if len(ids) == 0 {
		return nil
	}

	var count int64

	if err := db.DB.Model(&models.OhCard{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return failed("check cards", err)
	}

	if count != int64(len(ids)) {
		return invalidField("cards", "references unknown cards")
	}

	return nil
}

func CreateSession(actor Actor, in CreateSessionInput) (*models.Session, error) {
	in.Title = strings.TrimSpace(in.Title)

	if err := Validate(&in); err != nil {
		return nil, err
	}

	var client models.Client

	if err := db.DB.Where("id = ? AND user_id = ?", in.ClientID, actor.User.ID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, failed("load client", err)
	}

	session := models.Session{
		ClientID: client.ID,
		UserID:   actor.User.ID,
		Title:    in.Title,
		Notes:    in.Notes,
		Date:     time.Now(),
	}

	err := commitWithActivity(actor, types.ActivityAddSession, func(tx *gorm.DB) (*uint, error) {
		if err := tx.Create(&session).Error; err != nil {
			return nil, err
		}
		return &client.ID, nil
	})

	if err != nil {
		return nil, failed("create session", err)
	}

	return &session, nil
}

// SaveCardArrangement replaces every card placement of the session with the
// submitted set.
func SaveCardArrangement(actor Actor, in SaveCardArrangementInput) ([]models.SessionCard, error) {
	if err := Validate(&in); err != nil {
		return nil, err
	}

	session, err := ownedSession(actor.User.ID, in.SessionID)

	if err != nil {
		return nil, err
	}

	if err := checkCardsExist(in.Cards); err != nil {
		return nil, err
	}

	cards := make([]models.SessionCard, 0, len(in.Cards))
	for _, p := range in.Cards {
		cards = append(cards, models.SessionCard{
			SessionID: session.ID,
			CardID:    p.CardID,
			PositionX: *p.PositionX,
			PositionY: *p.PositionY,
			Rotation:  p.rotation(),
			Notes:     p.Notes,
		})
	}

	var entry models.ActivityLog

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.SessionCard{}).Error; err != nil {
			return err
		}

		if len(cards) > 0 {
			if err := tx.Create(&cards).Error; err != nil {
				return err
			}
		}

		var err error
		entry, err = logActivity(tx, actor.User.ID, &session.ClientID, types.ActivityUpdateSession, actor.IP)
		return err
	})

	if err != nil {
		return nil, failed("save card arrangement", err)
	}

	announce(entry)
	return cards, nil
}

// AddSessionNote stores a markdown note and bumps the case association of
// each of its keywords.
func AddSessionNote(actor Actor, sessionID uint, in AddSessionNoteInput) (*models.SessionNote, error) {
	in.Content = strings.TrimSpace(in.Content)
	in.Keywords = uniqueTrimmed(in.Keywords)

	if err := Validate(&in); err != nil {
		return nil, err
	}

	session, err := ownedSession(actor.User.ID, sessionID)

	if err != nil {
		return nil, err
	}

	keywords := in.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	encoded, err := json.Marshal(keywords)

	if err != nil {
		return nil, failed("encode keywords", err)
	}

	note := models.SessionNote{
		SessionID: session.ID,
		Content:   in.Content,
		Keywords:  datatypes.JSON(encoded),
	}

	var entry models.ActivityLog

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&note).Error; err != nil {
			return err
		}

		for _, keyword := range keywords {
			association := models.CaseAssociation{
				Keyword:   keyword,
				SessionID: session.ID,
				Strength:  1,
			}

			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "keyword"}, {Name: "session_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"strength": gorm.Expr("case_associations.strength + 1")}),
			}).Create(&association).Error

			if err != nil {
				return err
			}
		}

		var err error
		entry, err = logActivity(tx, actor.User.ID, &session.ClientID, types.ActivityUpdateSession, actor.IP)
		return err
	})

	if err != nil {
		return nil, failed("add session note", err)
	}

	announce(entry)
	return &note, nil
}
