package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskflow/internal/handler"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

func setupChatTest() (*gin.Engine, *MockChatStore, *MockTaskStore) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chat := new(MockChatStore)
	tasks := new(MockTaskStore)
	h := handler.NewChatHandler(chat, tasks)

	r.GET("/chat/messages", h.GetMessages)
	r.POST("/chat/messages", h.PostMessage)
	r.GET("/tasks/:id/comments", h.GetComments)
	r.POST("/tasks/:id/comments", h.AddComment)
	return r, chat, tasks
}

func TestPostMessage_TrimsText(t *testing.T) {
	// Arrange
	router, chat, _ := setupChatTest()
	chat.On("AddMessage", mock.Anything, mock.MatchedBy(func(m *model.ChatMessage) bool {
		return m.Message == "hello team" && m.UserName == "Ana"
	})).Return(nil)

	// Act
	resp := doJSON(router, http.MethodPost, "/chat/messages", map[string]any{"message": "  hello team ", "user_name": "Ana"})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	chat.AssertExpectations(t)
}

func TestPostMessage_Blank(t *testing.T) {
	router, chat, _ := setupChatTest()

	resp := doJSON(router, http.MethodPost, "/chat/messages", map[string]any{"message": "   ", "user_name": "Ana"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	chat.AssertNotCalled(t, "AddMessage", mock.Anything, mock.Anything)
}

func TestGetMessages_Empty(t *testing.T) {
	router, chat, _ := setupChatTest()
	chat.On("Messages", mock.Anything, 200).Return(nil, nil)

	resp := doJSON(router, http.MethodGet, "/chat/messages", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestAddComment_UnknownTask(t *testing.T) {
	router, chat, tasks := setupChatTest()
	id := uuid.New()
	tasks.On("GetByID", mock.Anything, id).Return(nil, repository.ErrTaskNotFound)

	resp := doJSON(router, http.MethodPost, "/tasks/"+id.String()+"/comments", map[string]any{"comment": "done?", "user_name": "Ana"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	chat.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything)
}

func TestAddComment(t *testing.T) {
	router, chat, tasks := setupChatTest()
	id := uuid.New()
	tasks.On("GetByID", mock.Anything, id).Return(&model.Task{ID: id}, nil)
	chat.On("AddComment", mock.Anything, mock.AnythingOfType("*model.TaskComment")).Return(nil)

	resp := doJSON(router, http.MethodPost, "/tasks/"+id.String()+"/comments", map[string]any{"comment": " looks good ", "user_name": "Ana"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var comment model.TaskComment
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &comment))
	assert.Equal(t, id, comment.TaskID)
	assert.Equal(t, "looks good", comment.Comment)
}

func TestGetComments(t *testing.T) {
	router, chat, _ := setupChatTest()
	id := uuid.New()
	chat.On("Comments", mock.Anything, id).Return([]model.TaskComment{{ID: uuid.New(), TaskID: id, Comment: "first", UserName: "Ana"}}, nil)

	resp := doJSON(router, http.MethodGet, "/tasks/"+id.String()+"/comments", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var comments []model.TaskComment
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &comments))
	assert.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].Comment)
}
