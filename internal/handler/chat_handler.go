package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

const chatHistory = 200

type ChatHandler struct {
	chatRepo ChatStore
	taskRepo TaskStore
}

func NewChatHandler(chatRepo ChatStore, taskRepo TaskStore) *ChatHandler {
	return &ChatHandler{chatRepo: chatRepo, taskRepo: taskRepo}
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req model.ChatMessageCreate
	if err := c.ShouldBindJSON(&req); err != nil || model.Blank(req.Message) || model.Blank(req.UserName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	msg := &model.ChatMessage{
		Message:    strings.TrimSpace(req.Message),
		UserName:   strings.TrimSpace(req.UserName),
		UserAvatar: req.UserAvatar,
	}
	if err := h.chatRepo.AddMessage(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	msgs, err := h.chatRepo.Messages(c.Request.Context(), chatHistory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}

	c.JSON(http.StatusOK, msgs)
}

// AddComment добавляет комментарий к существующей задаче
func (h *ChatHandler) AddComment(c *gin.Context) {
	taskID, ok := parseID(c, "task")
	if !ok {
		return
	}

	var req model.TaskCommentCreate
	if err := c.ShouldBindJSON(&req); err != nil || model.Blank(req.Comment) || model.Blank(req.UserName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.taskRepo.GetByID(c.Request.Context(), taskID); err != nil {
		respondLookupError(c, err, repository.ErrTaskNotFound, "Task not found", "Failed to retrieve task")
		return
	}

	comment := &model.TaskComment{
		TaskID:   taskID,
		Comment:  strings.TrimSpace(req.Comment),
		UserName: strings.TrimSpace(req.UserName),
	}
	if err := h.chatRepo.AddComment(c.Request.Context(), comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *ChatHandler) GetComments(c *gin.Context) {
	taskID, ok := parseID(c, "task")
	if !ok {
		return
	}

	comments, err := h.chatRepo.Comments(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}
	if comments == nil {
		comments = []model.TaskComment{}
	}

	c.JSON(http.StatusOK, comments)
}
