package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Provider  bool      `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
}
