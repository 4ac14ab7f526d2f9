package db

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/ohcard-dev/ohcard/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed decks.yaml
var defaultDecks []byte

type deckFile struct {
	Decks []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Cards       []struct {
			Name        string `yaml:"name"`
			ImageURL    string `yaml:"image_url"`
			Description string `yaml:"description"`
		} `yaml:"cards"`
	} `yaml:"decks"`
}

// ParseDecks decodes a deck manifest. Every deck it returns is a system deck.
func ParseDecks(data []byte) ([]models.OhCardDeck, error) {
	var file deckFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse deck manifest: %w", err)
	}

	decks := make([]models.OhCardDeck, 0, len(file.Decks))

	for _, d := range file.Decks {
		if d.Name == "" {
			return nil, errors.New("parse deck manifest: deck without name")
		}

		deck := models.OhCardDeck{
			Name:        d.Name,
			Description: d.Description,
			IsSystem:    true,
		}

		for _, c := range d.Cards {
			if c.Name == "" || c.ImageURL == "" {
				return nil, fmt.Errorf("parse deck manifest: card in %q needs name and image_url", d.Name)
			}
			deck.Cards = append(deck.Cards, models.OhCard{
				Name:        c.Name,
				ImageURL:    c.ImageURL,
				Description: c.Description,
			})
		}

		decks = append(decks, deck)
	}

	return decks, nil
}

// SeedDecks inserts the decks from the manifest that do not exist yet, matched
// by name. A nil manifest seeds the built-in decks. It returns how many decks
// were created.
func SeedDecks(data []byte) (int, error) {
	if data == nil {
		data = defaultDecks
	}

	decks, err := ParseDecks(data)

	if err != nil {
		return 0, err
	}

	created := 0

	for _, deck := range decks {
		var existing models.OhCardDeck

		err := DB.Where("name = ?", deck.Name).First(&existing).Error

		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		if err := DB.Create(&deck).Error; err != nil {
			return created, fmt.Errorf("seed deck %q: %w", deck.Name, err)
		}

		created++
	}

	return created, nil
}
