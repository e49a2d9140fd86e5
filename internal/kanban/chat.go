package kanban

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/filter"
	"taskflow/internal/model"
)

// PostMessage appends a message from the store user to the global chat.
func (s *Store) PostMessage(text string) (model.ChatMessage, bool) {
	if model.Blank(text) {
		return model.ChatMessage{}, s.ignored("post message: empty text")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := model.ChatMessage{
		ID:        uuid.New(),
		Message:   strings.TrimSpace(text),
		UserName:  s.user.Name,
		CreatedAt: s.fresh(),
	}
	s.messages = append(s.messages, m)
	return m, true
}

func (s *Store) Messages() []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]model.ChatMessage, 0, len(s.messages)), s.messages...)
}

// AddComment appends a comment from the store user to an existing task.
func (s *Store) AddComment(taskID uuid.UUID, text string) (model.TaskComment, bool) {
	if model.Blank(text) {
		return model.TaskComment{}, s.ignored("add comment: empty text")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(taskID) < 0 {
		return model.TaskComment{}, s.ignored("add comment: unknown task", zap.Stringer("task_id", taskID))
	}
	c := model.TaskComment{
		ID:        uuid.New(),
		TaskID:    taskID,
		Comment:   strings.TrimSpace(text),
		UserName:  s.user.Name,
		CreatedAt: s.fresh(),
	}
	s.comments = append(s.comments, c)
	return c, true
}

func (s *Store) Comments(taskID uuid.UUID) []model.TaskComment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.CommentsForTask(s.comments, taskID)
}
