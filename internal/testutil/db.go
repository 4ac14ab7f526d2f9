// Package testutil wires an isolated in-memory database into db.DB for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB replaces db.DB with a fresh migrated sqlite database for the
// duration of the test.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	previous := db.DB
	db.DB = conn

	require.NoError(t, db.MigrateDatabase())

	t.Cleanup(func() {
		db.DB = previous
		sqlDB.Close()
	})

	return conn
}

// SeedDeck creates a deck with n cards and returns the card ids.
func SeedDeck(t *testing.T, name string, n int) []uint {
	t.Helper()

	deck := models.OhCardDeck{Name: name, IsSystem: true}
	for i := 0; i < n; i++ {
		deck.Cards = append(deck.Cards, models.OhCard{
			Name:     fmt.Sprintf("%s card %d", name, i+1),
			ImageURL: fmt.Sprintf("/cards/%s/%03d.jpg", name, i+1),
		})
	}

	require.NoError(t, db.DB.Create(&deck).Error)

	ids := make([]uint, 0, n)
	for _, card := range deck.Cards {
		ids = append(ids, card.ID)
	}

	return ids
}

// CountActivity returns the number of activity rows of the given action for a user.
func CountActivity(t *testing.T, userID uint, action string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.DB.Model(&models.ActivityLog{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&count).Error)

	return count
}
