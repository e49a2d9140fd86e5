// Package client is a thin JSON client for the TaskFlow REST service.
// Calls are passed straight through: no retry, caching or pagination.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/model"
)

const DefaultBaseURL = "http://localhost:8000"

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api call", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &payload) != nil || payload.Error == "" {
			payload.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, in model.TaskCreate) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPost, "/tasks", in, &task)
	return task, err
}

func (c *Client) GetTask(ctx context.Context, id uuid.UUID) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodGet, "/tasks/"+id.String(), nil, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+id.String(), patch, &task)
	return task, err
}

func (c *Client) ToggleTask(ctx context.Context, id uuid.UUID) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+id.String()+"/toggle", nil, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil)
}

func (c *Client) ListComments(ctx context.Context, taskID uuid.UUID) ([]model.TaskComment, error) {
	var comments []model.TaskComment
	err := c.do(ctx, http.MethodGet, "/tasks/"+taskID.String()+"/comments", nil, &comments)
	return comments, err
}

func (c *Client) AddComment(ctx context.Context, taskID uuid.UUID, in model.TaskCommentCreate) (model.TaskComment, error) {
	var comment model.TaskComment
	err := c.do(ctx, http.MethodPost, "/tasks/"+taskID.String()+"/comments", in, &comment)
	return comment, err
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &projects)
	return projects, err
}

func (c *Client) CreateProject(ctx context.Context, in model.ProjectCreate) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPost, "/projects", in, &p)
	return p, err
}

func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodGet, "/projects/"+id.String(), nil, &p)
	return p, err
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPut, "/projects/"+id.String(), patch, &p)
	return p, err
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id.String(), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) CreateCategory(ctx context.Context, in model.CategoryCreate) (model.Category, error) {
	var cat model.Category
	err := c.do(ctx, http.MethodPost, "/categories", in, &cat)
	return cat, err
}

func (c *Client) GetCategory(ctx context.Context, id uuid.UUID) (model.Category, error) {
	var cat model.Category
	err := c.do(ctx, http.MethodGet, "/categories/"+id.String(), nil, &cat)
	return cat, err
}

func (c *Client) UpdateCategory(ctx context.Context, id uuid.UUID, patch model.CategoryPatch) (model.Category, error) {
	var cat model.Category
	err := c.do(ctx, http.MethodPut, "/categories/"+id.String(), patch, &cat)
	return cat, err
}

func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id.String(), nil, nil)
}

func (c *Client) ListMessages(ctx context.Context) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	err := c.do(ctx, http.MethodGet, "/chat/messages", nil, &msgs)
	return msgs, err
}

func (c *Client) PostMessage(ctx context.Context, in model.ChatMessageCreate) (model.ChatMessage, error) {
	var msg model.ChatMessage
	err := c.do(ctx, http.MethodPost, "/chat/messages", in, &msg)
	return msg, err
}

func (c *Client) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	err := c.do(ctx, http.MethodGet, "/stats", nil, &stats)
	return stats, err
}
