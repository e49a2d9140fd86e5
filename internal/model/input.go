package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskCreate is the payload for creating a project or category task.
type TaskCreate struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description,omitempty"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type ProjectCreate struct {
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description,omitempty"`
	Type        WorkspaceType `json:"type"`
	Color       string        `json:"color"`
	Icon        string        `json:"icon"`
}

type CategoryCreate struct {
	Name          string        `json:"name" binding:"required"`
	Description   string        `json:"description,omitempty"`
	Color         string        `json:"color"`
	Icon          string        `json:"icon"`
	WorkspaceType WorkspaceType `json:"workspace_type"`
}

type ChatMessageCreate struct {
	Message    string  `json:"message" binding:"required"`
	UserName   string  `json:"user_name" binding:"required"`
	UserAvatar *string `json:"user_avatar,omitempty"`
}

type TaskCommentCreate struct {
	Comment  string `json:"comment" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
}

// Stats is the aggregate served by the stats endpoint.
type Stats struct {
	TotalTasks      int64   `json:"total_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	PendingTasks    int64   `json:"pending_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
	TotalProjects   int64   `json:"total_projects"`
	TotalCategories int64   `json:"total_categories"`
}
