package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/kanban"
	"taskflow/internal/model"
)

type ColumnHandler struct {
	store *kanban.Store
}

func NewColumnHandler(store *kanban.Store) *ColumnHandler {
	return &ColumnHandler{store: store}
}

type CreateColumnRequest struct {
	Name   string            `json:"name" binding:"required"`
	Color  string            `json:"color"`
	Status *model.TaskStatus `json:"status"`
}

// Create appends a lane to the board
func (h *ColumnHandler) Create(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}
	if _, found := h.store.Board(boardID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	column, created := h.store.CreateColumn(kanban.ColumnInput{
		BoardID: boardID,
		Name:    req.Name,
		Color:   req.Color,
		Status:  req.Status,
	})
	if !created {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusCreated, column)
}

func (h *ColumnHandler) GetAll(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}
	if _, found := h.store.Board(boardID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, h.store.Columns(boardID))
}

// Update применяет патч; смена статуса колонки переносит статус её задач
func (h *ColumnHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "column")
	if !ok {
		return
	}

	var patch model.ColumnPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, found := h.store.UpdateColumn(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	c.JSON(http.StatusOK, column)
}

// Delete removes the lane. Its tasks move to the first remaining lane.
func (h *ColumnHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "column")
	if !ok {
		return
	}

	if !h.store.DeleteColumn(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted"})
}
