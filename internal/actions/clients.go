package actions

import (
	"errors"
	"strings"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/ohcard-dev/ohcard/internal/utils"
	"gorm.io/gorm"
)

type ClientInput struct {
	Nickname      string   `json:"nickname" form:"nickname" binding:"required,min=1,max=100"`
	ContactInfo   string   `json:"contact_info" form:"contact_info" binding:"required,min=1,max=255"`
	ContactMethod string   `json:"contact_method" form:"contact_method" binding:"required,oneof=wechat phone"`
	Notes         string   `json:"notes" form:"notes"`
	Tags          []string `json:"tags" form:"tags" binding:"omitempty,max=20,dive,required,max=50"`
}

func (in *ClientInput) normalize() {
	in.Nickname = strings.TrimSpace(in.Nickname)
	in.ContactInfo = strings.TrimSpace(in.ContactInfo)
	in.ContactMethod = strings.ToLower(strings.TrimSpace(in.ContactMethod))
	in.Tags = uniqueTrimmed(in.Tags)
}

// uniqueTrimmed trims each value and drops blanks and repeats, keeping order.
func uniqueTrimmed(values []string) []string {
	if values == nil {
		return nil
	}

	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	return out
}

func buildTags(names []string, clientID uint) []models.ClientTag {
	tags := make([]models.ClientTag, 0, len(names))
	for _, name := range names {
		tags = append(tags, models.ClientTag{
			Name:     name,
			Color:    utils.ColorForTag(name),
			ClientID: clientID,
		})
	}
	return tags
}

func CreateClient(actor Actor, in ClientInput) (*models.Client, error) {
	in.normalize()

	if err := Validate(&in); err != nil {
		return nil, err
	}

	client := models.Client{
		Nickname:      in.Nickname,
		ContactInfo:   in.ContactInfo,
		ContactMethod: in.ContactMethod,
		Notes:         in.Notes,
		UserID:        actor.User.ID,
		Tags:          buildTags(in.Tags, 0),
	}

	err := commitWithActivity(actor, types.ActivityAddClient, func(tx *gorm.DB) (*uint, error) {
		if err := tx.Create(&client).Error; err != nil {
			return nil, err
		}
		return &client.ID, nil
	})

	if err != nil {
		return nil, failed("create client", err)
	}

	return &client, nil
}

// UpdateClient rewrites a client the actor owns. A nil Tags leaves the tags
// alone; any other value replaces them.
func UpdateClient(actor Actor, clientID uint, in ClientInput) (*models.Client, error) {
	in.normalize()

	if err := Validate(&in); err != nil {
		return nil, err
	}

	var client models.Client

	if err := db.DB.Where("id = ? AND user_id = ?", clientID, actor.User.ID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, failed("load client", err)
	}

	var entry models.ActivityLog

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"nickname":       in.Nickname,
			"contact_info":   in.ContactInfo,
			"contact_method": in.ContactMethod,
			"notes":          in.Notes,
		}

		if err := tx.Model(&client).Updates(updates).Error; err != nil {
			return err
		}

		if in.Tags != nil {
			if err := tx.Where("client_id = ?", client.ID).Delete(&models.ClientTag{}).Error; err != nil {
				return err
			}
			if tags := buildTags(in.Tags, client.ID); len(tags) > 0 {
				if err := tx.Create(&tags).Error; err != nil {
					return err
				}
			}
		}

		var err error
		entry, err = logActivity(tx, actor.User.ID, &client.ID, types.ActivityUpdateClient, actor.IP)
		return err
	})

	if err != nil {
		return nil, failed("update client", err)
	}

	announce(entry)

	if err := db.DB.Preload("Tags").First(&client, client.ID).Error; err != nil {
		return nil, failed("reload client", err)
	}

	return &client, nil
}
