package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type ProjectHandler struct {
	projectRepo ProjectStore
}

func NewProjectHandler(projectRepo ProjectStore) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil || model.Blank(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project type must be personal or team"})
		return
	}

	project := &model.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		Color:       req.Color,
		Icon:        req.Icon,
	}
	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetAll(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	projects, err := h.projectRepo.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrProjectNotFound, "Project not found", "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	var patch model.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrProjectNotFound, "Project not found", "Failed to retrieve project")
		return
	}

	patch.Apply(project)

	if err := h.projectRepo.Update(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete удаляет проект вместе с его задачами
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "project")
	if !ok {
		return
	}

	if err := h.projectRepo.Delete(c.Request.Context(), id); err != nil {
		respondLookupError(c, err, repository.ErrProjectNotFound, "Project not found", "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
