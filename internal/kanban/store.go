// Package kanban is the in-memory system of record for workspaces, teams,
// boards, columns, board tasks, the global chat and task comments.
//
// Mutations follow one contract: an empty required text field or an unknown
// id makes the call a no-op that reports false. Nothing here returns an
// error.
package kanban

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/model"
)

// User is the identity that owns what the store creates.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Store struct {
	mu   sync.RWMutex
	now  func() time.Time
	user User
	log  *zap.Logger

	workspaces []model.Workspace
	teams      []model.Team
	boards     []model.Board
	columns    []model.Column
	tasks      []model.Task
	messages   []model.ChatMessage
	comments   []model.TaskComment

	currentWorkspace uuid.UUID
	currentBoard     uuid.UUID
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithUser(u User) Option {
	return func(s *Store) { s.user = u }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:  time.Now,
		log:  zap.NewNop(),
		user: User{ID: uuid.New(), Name: "me"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// stamp returns the current time, moved past prev when the clock has not
// advanced so that updates always produce a later timestamp.
func (s *Store) stamp(prev time.Time) time.Time {
	t := s.now().UTC()
	if !t.After(prev) && !prev.IsZero() {
		t = prev.Add(time.Nanosecond)
	}
	return t
}

func (s *Store) fresh() time.Time {
	return s.now().UTC()
}

func (s *Store) ignored(op string, fields ...zap.Field) bool {
	s.log.Debug("kanban: ignored "+op, fields...)
	return false
}

func indexOf[T any](items []T, id uuid.UUID, key func(*T) uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	for i := range items {
		if key(&items[i]) == id {
			return i
		}
	}
	return -1
}

func removeWhere[T any](items []T, drop func(*T) bool) []T {
	out := items[:0]
	for i := range items {
		if !drop(&items[i]) {
			out = append(out, items[i])
		}
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}

func (s *Store) workspaceIndex(id uuid.UUID) int {
	return indexOf(s.workspaces, id, func(w *model.Workspace) uuid.UUID { return w.ID })
}

func (s *Store) boardIndex(id uuid.UUID) int {
	return indexOf(s.boards, id, func(b *model.Board) uuid.UUID { return b.ID })
}

func (s *Store) columnIndex(id uuid.UUID) int {
	return indexOf(s.columns, id, func(c *model.Column) uuid.UUID { return c.ID })
}

func (s *Store) taskIndex(id uuid.UUID) int {
	return indexOf(s.tasks, id, func(t *model.Task) uuid.UUID { return t.ID })
}

type cloner[T any] interface {
	Clone() T
}

// cloneAll deep-copies items so callers never share state with the store.
func cloneAll[T cloner[T]](items []T) []T {
	out := make([]T, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
