package models

type Client struct {
	BaseModel

	Nickname      string `gorm:"size:100;not null" json:"nickname"`
	ContactInfo   string `gorm:"size:255;not null" json:"contact_info"` // WeChat id or phone number
	ContactMethod string `gorm:"size:20;not null" json:"contact_method"`
	Notes         string `gorm:"type:text" json:"notes"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Tags     []ClientTag `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"tags,omitempty"`
	Sessions []Session   `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

type ClientTag struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Color    string `gorm:"size:20" json:"color"`
	ClientID uint   `gorm:"not null;index" json:"client_id"`
}
