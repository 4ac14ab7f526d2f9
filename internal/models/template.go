package models

import "time"

type CardArrangementTemplate struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Snapshot    string    `gorm:"type:text" json:"snapshot,omitempty"` // base64 thumbnail
	CreatedAt   time.Time `json:"created_at"`

	Cards []TemplateCard `gorm:"foreignKey:TemplateID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"cards"`
}

type TemplateCard struct {
	ID         uint `gorm:"primarykey" json:"id"`
	TemplateID uint `gorm:"not null;index" json:"template_id"`
	CardID     uint `gorm:"not null" json:"card_id"`
	PositionX  int  `gorm:"not null" json:"position_x"`
	PositionY  int  `gorm:"not null" json:"position_y"`
	Rotation   int  `gorm:"not null;default:0" json:"rotation"`
}
