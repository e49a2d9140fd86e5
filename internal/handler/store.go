package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/model"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// TaskStore is the persistence the task handler needs
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context, skip, limit int) ([]model.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Toggle(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (model.Stats, error)
}

type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context, skip, limit int) ([]model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryStore interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context, skip, limit int) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChatStore interface {
	AddMessage(ctx context.Context, msg *model.ChatMessage) error
	Messages(ctx context.Context, limit int) ([]model.ChatMessage, error)
	AddComment(ctx context.Context, comment *model.TaskComment) error
	Comments(ctx context.Context, taskID uuid.UUID) ([]model.TaskComment, error)
}

// parseID reads the :id path parameter, answering 400 when it is not a UUID
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads skip and limit query parameters
func pagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, limit = 0, defaultLimit
	var err error
	if v := c.Query("skip"); v != "" {
		if skip, err = strconv.Atoi(v); err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
			return 0, 0, false
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return 0, 0, false
		}
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	return skip, limit, true
}
