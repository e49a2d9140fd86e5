package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/kanban"
	"taskflow/internal/model"
)

// WorkspaceHandler serves workspaces, teams and the current selection of the
// kanban store.
type WorkspaceHandler struct {
	store *kanban.Store
}

func NewWorkspaceHandler(store *kanban.Store) *WorkspaceHandler {
	return &WorkspaceHandler{store: store}
}

type CreateWorkspaceRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Type        model.WorkspaceType `json:"type"`
	Visibility  model.Visibility    `json:"visibility"`
	SharedWith  []uuid.UUID         `json:"shared_with"`
	TeamID      *uuid.UUID          `json:"team_id"`
	Color       string              `json:"color"`
	Icon        string              `json:"icon"`
}

type CreateTeamRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Members     []model.TeamMember `json:"members"`
}

// SessionResponse is the current workspace and board, null when unset.
type SessionResponse struct {
	Workspace *model.Workspace `json:"workspace"`
	Board     *model.Board     `json:"board"`
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	w, ok := h.store.CreateWorkspace(kanban.WorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Visibility:  req.Visibility,
		SharedWith:  req.SharedWith,
		TeamID:      req.TeamID,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusCreated, w)
}

// GetAll returns every workspace, or those of one type with ?type=
func (h *WorkspaceHandler) GetAll(c *gin.Context) {
	if typ := model.WorkspaceType(c.Query("type")); typ != "" {
		if !typ.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace type"})
			return
		}
		c.JSON(http.StatusOK, h.store.WorkspacesOfType(typ))
		return
	}
	c.JSON(http.StatusOK, h.store.Workspaces())
}

func (h *WorkspaceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "workspace")
	if !ok {
		return
	}

	w, found := h.store.Workspace(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "workspace")
	if !ok {
		return
	}

	var patch model.WorkspacePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	w, found := h.store.UpdateWorkspace(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	c.JSON(http.StatusOK, w)
}

// Delete removes the workspace with its boards, columns, tasks and comments
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "workspace")
	if !ok {
		return
	}

	if !h.store.DeleteWorkspace(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted"})
}

// Select делает рабочее пространство текущим и закрывает открытую доску
func (h *WorkspaceHandler) Select(c *gin.Context) {
	id, ok := parseID(c, "workspace")
	if !ok {
		return
	}

	if !h.store.SelectWorkspace(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	h.Session(c)
}

func (h *WorkspaceHandler) Session(c *gin.Context) {
	var resp SessionResponse
	if w, ok := h.store.CurrentWorkspace(); ok {
		resp.Workspace = &w
	}
	if b, ok := h.store.CurrentBoard(); ok {
		resp.Board = &b
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkspaceHandler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	team, ok := h.store.CreateTeam(kanban.TeamInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
	})
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusCreated, team)
}

func (h *WorkspaceHandler) GetTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Teams())
}
