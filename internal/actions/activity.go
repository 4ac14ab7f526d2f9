package actions

import (
	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/metrics"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/services"
	"github.com/ohcard-dev/ohcard/internal/types"
	"gorm.io/gorm"
)

// Actor is the authenticated user performing an action and the address the
// request came from.
type Actor struct {
	User models.User
	IP   string
}

func logActivity(tx *gorm.DB, userID uint, clientID *uint, action types.ActivityType, ip string) (models.ActivityLog, error) {
	entry := models.ActivityLog{
		UserID:    userID,
		ClientID:  clientID,
		Action:    string(action),
		IPAddress: ip,
	}

	err := tx.Create(&entry).Error
	return entry, err
}

// announce runs once the entry is durable.
func announce(entry models.ActivityLog) {
	metrics.RecordActivity(entry.Action)
	services.PublishActivity(entry)
}

// commitWithActivity runs mutate and the activity insert in one transaction.
// mutate returns the client the entry refers to, if any. The entry is
// announced only after commit.
func commitWithActivity(actor Actor, action types.ActivityType, mutate func(tx *gorm.DB) (*uint, error)) error {
	var entry models.ActivityLog

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		clientID, err := mutate(tx)
		if err != nil {
			return err
		}

		entry, err = logActivity(tx, actor.User.ID, clientID, action, actor.IP)
		return err
	})

	if err != nil {
		return err
	}

	announce(entry)
	return nil
}

func recordActivity(userID uint, clientID *uint, action types.ActivityType, ip string) error {
	entry, err := logActivity(db.DB, userID, clientID, action, ip)

	if err != nil {
		return failed("log activity", err)
	}

	announce(entry)
	return nil
}
