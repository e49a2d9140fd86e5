package kanban

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/filter"
	"taskflow/internal/model"
)

type WorkspaceInput struct {
	Name        string
	Description string
	Type        model.WorkspaceType
	Visibility  model.Visibility
	SharedWith  []uuid.UUID
	TeamID      *uuid.UUID
	Color       string
	Icon        string
}

func (s *Store) CreateWorkspace(in WorkspaceInput) (model.Workspace, bool) {
	if model.Blank(in.Name) {
		return model.Workspace{}, s.ignored("create workspace: empty name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.fresh()
	w := model.Workspace{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		Visibility:  in.Visibility,
		OwnerID:     s.user.ID,
		SharedWith:  in.SharedWith,
		TeamID:      in.TeamID,
		Color:       in.Color,
		Icon:        in.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}.Clone()
	w.Normalize()
	s.workspaces = append(s.workspaces, w)
	return w.Clone(), true
}

func (s *Store) UpdateWorkspace(id uuid.UUID, patch model.WorkspacePatch) (model.Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.workspaceIndex(id)
	if i < 0 {
		return model.Workspace{}, s.ignored("update workspace", zap.Stringer("id", id))
	}
	w := &s.workspaces[i]
	patch.Apply(w)
	w.UpdatedAt = s.stamp(w.UpdatedAt)
	return w.Clone(), true
}

// DeleteWorkspace removes the workspace together with its boards and,
// through them, their columns, tasks and task comments.
func (s *Store) DeleteWorkspace(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.workspaceIndex(id) < 0 {
		return s.ignored("delete workspace", zap.Stringer("id", id))
	}
	for _, b := range filter.BoardsForWorkspace(s.boards, id) {
		s.deleteBoard(b.ID)
	}
	s.workspaces = removeWhere(s.workspaces, func(w *model.Workspace) bool { return w.ID == id })
	if s.currentWorkspace == id {
		s.currentWorkspace = uuid.Nil
		s.currentBoard = uuid.Nil
	}
	return true
}

// SelectWorkspace makes the workspace current and closes any open board.
func (s *Store) SelectWorkspace(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.workspaceIndex(id) < 0 {
		return s.ignored("select workspace", zap.Stringer("id", id))
	}
	s.currentWorkspace = id
	s.currentBoard = uuid.Nil
	return true
}

func (s *Store) CurrentWorkspace() (model.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.workspaceIndex(s.currentWorkspace)
	if i < 0 {
		return model.Workspace{}, false
	}
	return s.workspaces[i].Clone(), true
}

func (s *Store) Workspace(id uuid.UUID) (model.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.workspaceIndex(id)
	if i < 0 {
		return model.Workspace{}, false
	}
	return s.workspaces[i].Clone(), true
}

func (s *Store) Workspaces() []model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.workspaces)
}

func (s *Store) WorkspacesOfType(typ model.WorkspaceType) []model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(filter.WorkspacesOfType(s.workspaces, typ))
}

type TeamInput struct {
	Name        string
	Description string
	Members     []model.TeamMember
}

// CreateTeam records the store user as the first member with the owner role.
// A supplied member with the same user id is not added twice.
func (s *Store) CreateTeam(in TeamInput) (model.Team, bool) {
	if model.Blank(in.Name) {
		return model.Team{}, s.ignored("create team: empty name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.fresh()
	members := []model.TeamMember{{
		UserID:    s.user.ID,
		UserName:  s.user.Name,
		UserEmail: s.user.Email,
		Role:      model.RoleOwner,
		JoinedAt:  now,
	}}
	for _, m := range in.Members {
		if m.UserID == s.user.ID {
			continue
		}
		if m.Role == "" || m.Role == model.RoleOwner {
			m.Role = model.RoleMember
		}
		m.JoinedAt = now
		members = append(members, m)
	}

	t := model.Team{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Members:     members,
		CreatedBy:   s.user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.teams = append(s.teams, t)
	return t.Clone(), true
}

func (s *Store) Teams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.teams)
}
