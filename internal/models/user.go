package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name         string `gorm:"size:100"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:20;not null;default:user"`

	// Relationships
	Clients   []Client                  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Sessions  []Session                 `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Templates []CardArrangementTemplate `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
