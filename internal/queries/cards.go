package queries

import (
	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
)

func ListDecks() ([]models.OhCardDeck, error) {
	decks := []models.OhCardDeck{}
	err := db.DB.Order("id ASC").Find(&decks).Error
	return decks, err
}

func GetDeckCards(deckID uint) ([]models.OhCard, error) {
	var deck models.OhCardDeck

	if err := db.DB.First(&deck, deckID).Error; err != nil {
		return nil, err
	}

	cards := []models.OhCard{}
	err := db.DB.Where("deck_id = ?", deckID).Order("id ASC").Find(&cards).Error
	return cards, err
}

func ListTemplates(userID uint) ([]models.CardArrangementTemplate, error) {
	templates := []models.CardArrangementTemplate{}

	err := db.DB.Preload("Cards").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templates).Error

	return templates, err
}
