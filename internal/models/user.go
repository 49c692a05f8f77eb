package models

import "time"

// User holds the display name submitted at session start. A new session
// replaces any existing row for the same TelegramID.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TelegramID int64     `gorm:"not null;index" json:"telegram_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
