package models

import "time"

type OhCardDeck struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsSystem    bool      `gorm:"not null;default:false" json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Cards []OhCard `gorm:"foreignKey:DeckID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"cards,omitempty"`
}

type OhCard struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	DeckID      uint   `gorm:"not null;index" json:"deck_id"`
	ImageURL    string `gorm:"size:255;not null" json:"image_url"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
