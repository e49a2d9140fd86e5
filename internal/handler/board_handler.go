package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/kanban"
	"taskflow/internal/model"
)

// BoardHandler serves boards and the tasks on them.
type BoardHandler struct {
	store *kanban.Store
}

func NewBoardHandler(store *kanban.Store) *BoardHandler {
	return &BoardHandler{store: store}
}

type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Position    *int   `json:"position"`
}

type CreateBoardTaskRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	ColumnID    uuid.UUID      `json:"column_id" binding:"required"`
	Priority    model.Priority `json:"priority"`
	Tags        []string       `json:"tags"`
	AssigneeID  *uuid.UUID     `json:"assignee_id"`
	DueDate     *time.Time     `json:"due_date"`
}

type MoveTaskRequest struct {
	ColumnID uuid.UUID `json:"column_id" binding:"required"`
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Create adds a board with the default columns to the workspace
func (h *BoardHandler) Create(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspace")
	if !ok {
		return
	}
	if _, found := h.store.Workspace(workspaceID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, created := h.store.CreateBoard(kanban.BoardInput{
		Name:        req.Name,
		Description: req.Description,
		WorkspaceID: workspaceID,
		Color:       req.Color,
		Icon:        req.Icon,
		Position:    req.Position,
	})
	if !created {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusCreated, board)
}

func (h *BoardHandler) GetAll(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspace")
	if !ok {
		return
	}
	if _, found := h.store.Workspace(workspaceID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	c.JSON(http.StatusOK, h.store.BoardsIn(workspaceID))
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "board")
	if !ok {
		return
	}

	var patch model.BoardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, found := h.store.UpdateBoard(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "board")
	if !ok {
		return
	}

	if !h.store.DeleteBoard(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted"})
}

// Open делает доску текущей вместе с её рабочим пространством
func (h *BoardHandler) Open(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	h.store.OpenBoard(board.ID)
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Counts(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.Counts(board.ID))
}

func (h *BoardHandler) CreateTask(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	var req CreateBoardTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, created := h.store.CreateTask(kanban.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		BoardID:     board.ID,
		ColumnID:    req.ColumnID,
		Priority:    req.Priority,
		Tags:        req.Tags,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if !created {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column is not on this board"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns the tasks of the board, or of one lane with ?column_id=
func (h *BoardHandler) GetTasks(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	raw := c.Query("column_id")
	if raw == "" {
		c.JSON(http.StatusOK, h.store.Tasks(board.ID))
		return
	}
	columnID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}
	c.JSON(http.StatusOK, h.store.TasksInColumn(columnID))
}

// UpdateTask applies a partial update. A status change moves the task to the
// lane of that status.
func (h *BoardHandler) UpdateTask(c *gin.Context) {
	task, ok := h.boardTask(c)
	if !ok {
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updated, _ := h.store.UpdateTask(task.ID, patch)
	c.JSON(http.StatusOK, updated)
}

func (h *BoardHandler) MoveTask(c *gin.Context) {
	task, ok := h.boardTask(c)
	if !ok {
		return
	}

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	moved, done := h.store.MoveTask(task.ID, req.ColumnID)
	if !done || moved.ColumnID == nil || *moved.ColumnID != req.ColumnID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column is not on this board"})
		return
	}

	c.JSON(http.StatusOK, moved)
}

func (h *BoardHandler) DeleteTask(c *gin.Context) {
	task, ok := h.boardTask(c)
	if !ok {
		return
	}

	h.store.DeleteTask(task.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func (h *BoardHandler) GetComments(c *gin.Context) {
	task, ok := h.boardTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.Comments(task.ID))
}

func (h *BoardHandler) AddComment(c *gin.Context) {
	task, ok := h.boardTask(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment, added := h.store.AddComment(task.ID, req.Comment)
	if !added {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// board resolves :id to a board, answering 400 or 404 itself
func (h *BoardHandler) board(c *gin.Context) (model.Board, bool) {
	id, ok := parseID(c, "board")
	if !ok {
		return model.Board{}, false
	}

	board, found := h.store.Board(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return model.Board{}, false
	}
	return board, true
}

// boardTask resolves :id/:task_id to a task that lives on that board
func (h *BoardHandler) boardTask(c *gin.Context) (model.Task, bool) {
	board, ok := h.board(c)
	if !ok {
		return model.Task{}, false
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return model.Task{}, false
	}

	task, found := h.store.Task(taskID)
	if !found || task.BoardID == nil || *task.BoardID != board.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return model.Task{}, false
	}
	return task, true
}
