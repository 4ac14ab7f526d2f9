package models

import "time"

// ActivityLog rows are only ever inserted.
type ActivityLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ClientID  *uint     `gorm:"index" json:"client_id"`
	Action    string    `gorm:"not null" json:"action"`
	Timestamp time.Time `gorm:"not null;autoCreateTime" json:"timestamp"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`

	User   User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Client *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
