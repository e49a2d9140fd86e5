package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type CategoryHandler struct {
	categoryRepo CategoryStore
}

func NewCategoryHandler(categoryRepo CategoryStore) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CategoryCreate
	if err := c.ShouldBindJSON(&req); err != nil || model.Blank(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	// Категории по умолчанию относятся к личному пространству
	if req.WorkspaceType == "" {
		req.WorkspaceType = model.WorkspacePersonal
	}
	if !req.WorkspaceType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workspace type must be personal or team"})
		return
	}

	category := &model.Category{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Color:         req.Color,
		Icon:          req.Icon,
		WorkspaceType: req.WorkspaceType,
	}
	if err := h.categoryRepo.Create(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	skip, limit, ok := pagination(c)
	if !ok {
		return
	}

	categories, err := h.categoryRepo.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}

	category, err := h.categoryRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrCategoryNotFound, "Category not found", "Failed to retrieve category")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}

	var patch model.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category, err := h.categoryRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, repository.ErrCategoryNotFound, "Category not found", "Failed to retrieve category")
		return
	}

	patch.Apply(category)

	if err := h.categoryRepo.Update(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}

	if err := h.categoryRepo.Delete(c.Request.Context(), id); err != nil {
		respondLookupError(c, err, repository.ErrCategoryNotFound, "Category not found", "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
