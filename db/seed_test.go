package db_test

import (
	"testing"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecksBuiltIn(t *testing.T) {
	decks, err := db.ParseDecks([]byte(`
decks:
  - name: Test deck
    cards:
      - name: One
        image_url: /one.jpg
      - name: Two
        image_url: /two.jpg
`))
	require.NoError(t, err)
	require.Len(t, decks, 1)

	assert.True(t, decks[0].IsSystem)
	assert.Len(t, decks[0].Cards, 2)
}

func TestParseDecksRejectsIncompleteCard(t *testing.T) {
	_, err := db.ParseDecks([]byte(`
decks:
  - name: Broken
    cards:
      - name: No image
`))
	assert.Error(t, err)
}

func TestSeedDecksIsIdempotent(t *testing.T) {
	testutil.SetupDB(t)

	created, err := db.SeedDecks(nil)
	require.NoError(t, err)
	assert.Greater(t, created, 0)

	again, err := db.SeedDecks(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, again)

	var decks int64
	require.NoError(t, db.DB.Model(&models.OhCardDeck{}).Count(&decks).Error)
	assert.Equal(t, int64(created), decks)

	var cards int64
	require.NoError(t, db.DB.Model(&models.OhCard{}).Count(&cards).Error)
	assert.Greater(t, cards, int64(0))
}
