package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage belongs to the global chat. Messages are never edited.
type ChatMessage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Message    string    `json:"message" gorm:"not null"`
	UserName   string    `json:"user_name" gorm:"not null"`
	UserAvatar *string   `json:"user_avatar,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type TaskComment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TaskID    uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	Comment   string    `json:"comment" gorm:"not null"`
	UserName  string    `json:"user_name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
