package types

import "time"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ClientWithUser is one row of a user left-joined to the clients they own.
type ClientWithUser struct {
	User          UserResponse `json:"user"`
	ClientID      *uint        `json:"client_id"`
	Nickname      *string      `json:"nickname"`
	ContactInfo   *string      `json:"contact_info"`
	ContactMethod *string      `json:"contact_method"`
}

type ActivityLogEntry struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	ClientID  *uint     `json:"client_id"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ip_address"`
	UserName  string    `json:"user_name"`
}

type CaseMatch struct {
	SessionID uint      `json:"session_id"`
	ClientID  uint      `json:"client_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Keyword   string    `json:"keyword"`
	Strength  int       `json:"strength"`
}
