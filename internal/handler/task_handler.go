package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type TaskHandler struct {
	taskRepo     TaskStore
	projectRepo  ProjectStore
	categoryRepo CategoryStore
}

func NewTaskHandler(taskRepo TaskStore, projectRepo ProjectStore, categoryRepo CategoryStore) *TaskHandler {
	return &TaskHandler{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

// Create создает новую задачу в проекте или категории
func (h *TaskHandler) Create(c *gin.Context) {
	var req model.TaskCreate
	if err := c.ShouldBindJSON(&req); err != nil || model.Blank(req.Title) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task := &model.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      model.StatusTodo,
		Priority:    req.Priority,
		Tags:        req.Tags,
		DueDate:     req.DueDate,
		ProjectID:   req.ProjectID,
		CategoryID:  req.CategoryID,
	}
	if !task.Priority.Valid() {
		task.Priority = model.PriorityMedium
	}

	parent := task.Parent()
	if err := parent.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A task belongs to one project or one category"})
		return
	}
	task.ParentKind = parent.Kind

	// Проверяем существование родителя
	switch parent.Kind {
	case model.ParentProject:
		if _, err := h.projectRepo.GetByID(c.Request.Context(), parent.ProjectID); err != nil {
			respondLookupError(c, err, repository.ErrProjectNotFound, "Project not found", "Failed to retrieve project")
			return
		}
	case model.ParentCategory:
		if _, err := h.categoryRepo.GetByID(c.Request.Context(), parent.CategoryID); err != nil {
			respondLookupError(c, err, repository.ErrCategoryNotFound, "Category not found", "Failed to retrieve category")
			return
		}
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetAll возвращает задачи постранично
func (h *TaskHandler) GetAll(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrTaskNotFound, "Task not found", "Failed to retrieve task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update применяет частичное обновление к задаче
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrTaskNotFound, "Task not found", "Failed to retrieve task")
		return
	}

	patch.Apply(task)

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// Toggle переключает статус выполнения задачи
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	task, err := h.taskRepo.Toggle(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrTaskNotFound, "Task not found", "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), id); err != nil {
		respondLookupError(c, err, repository.ErrTaskNotFound, "Task not found", "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Stats возвращает сводную статистику
func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.taskRepo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// respondLookupError maps a not-found sentinel to 404 and anything else to 500
func respondLookupError(c *gin.Context, err, notFound error, notFoundMsg, failMsg string) {
	if errors.Is(err, notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
}
