package models

import "time"

// Answer rows are append-only: duplicate submissions for the same question
// are all kept. Correctness is derived at read time, never stored.
type Answer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TelegramID    int64     `gorm:"not null;index" json:"telegram_id"`
	QuestionID    uint      `gorm:"not null" json:"question_id"`
	SubmittedText string    `gorm:"size:500;not null" json:"submitted_text"`
	CreatedAt     time.Time `json:"created_at"`
}
