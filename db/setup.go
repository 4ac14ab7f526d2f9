package db

import (
	"fmt"

	"github.com/ohcard-dev/ohcard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDatabase(driver, dsn string) error {
	var err error

	var dialector gorm.Dialector

	switch driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return err
	}

	return nil
}

func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Client{},
		&models.ClientTag{},
		&models.OhCardDeck{},
		&models.OhCard{},
		&models.Session{},
		&models.SessionCard{},
		&models.SessionNote{},
		&models.CaseAssociation{},
		&models.CardArrangementTemplate{},
		&models.TemplateCard{},
		&models.ActivityLog{},
	}
}

func MigrateDatabase() error {
	migrator := DB.Migrator()

	for _, model := range Models() {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
