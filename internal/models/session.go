package models

import (
	"time"

	"gorm.io/datatypes"
)

type Session struct {
	BaseModel

	ClientID uint      `gorm:"not null;index" json:"client_id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"` // therapist conducting the session
	Title    string    `gorm:"size:100" json:"title"`
	Date     time.Time `gorm:"not null" json:"date"`
	Notes    string    `gorm:"type:text" json:"notes"`
	Summary  string    `gorm:"type:text" json:"summary"`

	// Relationships
	Client           Client            `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Cards            []SessionCard     `gorm:"foreignKey:SessionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"cards"`
	SessionNotes     []SessionNote     `gorm:"foreignKey:SessionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"session_notes"`
	CaseAssociations []CaseAssociation `gorm:"foreignKey:SessionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// SessionCard is the placement of one card on a session canvas.
type SessionCard struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	SessionID uint   `gorm:"not null;index" json:"session_id"`
	CardID    uint   `gorm:"not null" json:"card_id"`
	PositionX int    `gorm:"not null" json:"position_x"`
	PositionY int    `gorm:"not null" json:"position_y"`
	Rotation  int    `gorm:"not null;default:0" json:"rotation"`
	Notes     string `gorm:"type:text" json:"notes"`

	Card OhCard `gorm:"foreignKey:CardID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}

type SessionNote struct {
	BaseModel

	SessionID uint           `gorm:"not null;index" json:"session_id"`
	Content   string         `gorm:"type:text;not null" json:"content"` // markdown
	Keywords  datatypes.JSON `gorm:"not null" json:"keywords"`
}

// CaseAssociation links a keyword to a session; Strength counts the notes carrying it.
type CaseAssociation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Keyword   string    `gorm:"size:50;not null;uniqueIndex:idx_keyword_session" json:"keyword"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_keyword_session" json:"session_id"`
	Strength  int       `gorm:"not null;default:1" json:"strength"`
	CreatedAt time.Time `json:"created_at"`
}
