package models

import "time"

// BaseModel is gorm.Model without soft delete. Only users are soft-deleted.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
