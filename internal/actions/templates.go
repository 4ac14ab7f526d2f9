package actions

import (
	"strings"

	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"gorm.io/gorm"
)

type CreateTemplateInput struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description"`
	Snapshot    string          `json:"snapshot"`
	Cards       []CardPlacement `json:"cards" binding:"required,min=1,max=200,dive"`
}

// CreateTemplate saves a reusable card layout, e.g. a three-card career spread.
func CreateTemplate(actor Actor, in CreateTemplateInput) (*models.CardArrangementTemplate, error) {
	in.Name = strings.TrimSpace(in.Name)

	if err := Validate(&in); err != nil {
		return nil, err
	}

	if err := checkCardsExist(in.Cards); err != nil {
		return nil, err
	}

	template := models.CardArrangementTemplate{
		Name:        in.Name,
		Description: in.Description,
		Snapshot:    in.Snapshot,
		UserID:      actor.User.ID,
	}

	for _, p := range in.Cards {
		template.Cards = append(template.Cards, models.TemplateCard{
			CardID:    p.CardID,
			PositionX: *p.PositionX,
			PositionY: *p.PositionY,
			Rotation:  p.rotation(),
		})
	}

	err := commitWithActivity(actor, types.ActivityAddTemplate, func(tx *gorm.DB) (*uint, error) {
		return nil, tx.Create(&template).Error
	})

	if err != nil {
		return nil, failed("create template", err)
	}

	return &template, nil
}
