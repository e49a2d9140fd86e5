// Package docs holds the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "integer", "name": "skip", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}}}}
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.TaskCreate"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Task"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Parent not found"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.TaskPatch"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/tasks/{id}/toggle": {
            "patch": {
                "tags": ["Tasks"],
                "summary": "Toggle task completion",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}, "404": {"description": "Not Found"}}
            }
        },
        "/tasks/{id}/comments": {
            "get": {"tags": ["Chat"], "summary": "List task comments", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Chat"], "summary": "Comment on a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/projects": {
            "get": {"tags": ["Projects"], "summary": "List projects", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Projects"], "summary": "Create a project", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/projects/{id}": {
            "get": {"tags": ["Projects"], "summary": "Get a project", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["Projects"], "summary": "Update a project", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Projects"], "summary": "Delete a project and its tasks", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/categories": {
            "get": {"tags": ["Categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Categories"], "summary": "Create a category", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/categories/{id}": {
            "get": {"tags": ["Categories"], "summary": "Get a category", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["Categories"], "summary": "Update a category", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Categories"], "summary": "Delete a category and its tasks", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/chat/messages": {
            "get": {"tags": ["Chat"], "summary": "List chat messages", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Chat"], "summary": "Post a chat message", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/stats": {
            "get": {"tags": ["Tasks"], "summary": "Task statistics", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Stats"}}}}
        },
        "/session": {
            "get": {"tags": ["Workspaces"], "summary": "Current workspace and board", "responses": {"200": {"description": "OK"}}}
        },
        "/workspaces": {
            "get": {"tags": ["Workspaces"], "summary": "List workspaces", "parameters": [{"type": "string", "description": "personal or team", "name": "type", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid workspace type"}}},
            "post": {"tags": ["Workspaces"], "summary": "Create a workspace", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid request"}}}
        },
        "/workspaces/{id}": {
            "get": {"tags": ["Workspaces"], "summary": "Get a workspace", "responses": {"200": {"description": "OK"}, "404": {"description": "Workspace not found"}}},
            "patch": {"tags": ["Workspaces"], "summary": "Update a workspace", "responses": {"200": {"description": "OK"}, "404": {"description": "Workspace not found"}}},
            "delete": {"tags": ["Workspaces"], "summary": "Delete a workspace with its boards", "responses": {"200": {"description": "OK"}, "404": {"description": "Workspace not found"}}}
        },
        "/workspaces/{id}/select": {
            "post": {"tags": ["Workspaces"], "summary": "Make a workspace current", "responses": {"200": {"description": "OK"}, "404": {"description": "Workspace not found"}}}
        },
        "/teams": {
            "get": {"tags": ["Workspaces"], "summary": "List teams", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Workspaces"], "summary": "Create a team owned by the caller", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid request"}}}
        },
        "/workspaces/{id}/boards": {
            "get": {"tags": ["Boards"], "summary": "List boards of a workspace", "responses": {"200": {"description": "OK"}, "404": {"description": "Workspace not found"}}},
            "post": {"tags": ["Boards"], "summary": "Create a board with default columns", "responses": {"201": {"description": "Created"}, "404": {"description": "Workspace not found"}}}
        },
        "/boards/{id}": {
            "get": {"tags": ["Boards"], "summary": "Get a board", "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}},
            "patch": {"tags": ["Boards"], "summary": "Update a board", "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}},
            "delete": {"tags": ["Boards"], "summary": "Delete a board with its columns and tasks", "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}}
        },
        "/boards/{id}/open": {
            "post": {"tags": ["Boards"], "summary": "Make a board current", "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}}
        },
        "/boards/{id}/counts": {
            "get": {"tags": ["Boards"], "summary": "Todo and done counts", "responses": {"200": {"description": "OK"}}}
        },
        "/boards/{id}/columns": {
            "get": {"tags": ["Boards"], "summary": "List columns", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Boards"], "summary": "Add a column", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid request"}}}
        },
        "/columns/{id}": {
            "patch": {"tags": ["Boards"], "summary": "Update a column", "responses": {"200": {"description": "OK"}, "404": {"description": "Column not found"}}},
            "delete": {"tags": ["Boards"], "summary": "Delete a column, moving its tasks", "responses": {"200": {"description": "OK"}, "404": {"description": "Column not found"}}}
        },
        "/boards/{id}/tasks": {
            "get": {"tags": ["Boards"], "summary": "List board tasks", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Boards"], "summary": "Create a task in a column", "responses": {"201": {"description": "Created"}, "400": {"description": "Column is not on this board"}}}
        },
        "/boards/{id}/tasks/{task_id}": {
            "patch": {"tags": ["Boards"], "summary": "Update a board task", "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}},
            "delete": {"tags": ["Boards"], "summary": "Delete a board task", "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}}
        },
        "/boards/{id}/tasks/{task_id}/move": {
            "post": {"tags": ["Boards"], "summary": "Move a task to another column", "responses": {"200": {"description": "OK"}, "400": {"description": "Column is not on this board"}}}
        },
        "/boards/{id}/tasks/{task_id}/comments": {
            "get": {"tags": ["Boards"], "summary": "List comments", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Boards"], "summary": "Comment on a task", "responses": {"201": {"description": "Created"}}}
        }
    },
    "definitions": {
        "model.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in_progress", "done"]},
                "completed": {"type": "boolean"},
                "priority": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "board_id": {"type": "string"},
                "column_id": {"type": "string"},
                "project_id": {"type": "string"},
                "category_id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.TaskCreate": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "project_id": {"type": "string"},
                "category_id": {"type": "string"}
            }
        },
        "model.TaskPatch": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string"},
                "completed": {"type": "boolean"},
                "priority": {"type": "string"}
            }
        },
        "model.Stats": {
            "type": "object",
            "properties": {
                "total_tasks": {"type": "integer"},
                "completed_tasks": {"type": "integer"},
                "pending_tasks": {"type": "integer"},
                "completion_rate": {"type": "number"},
                "total_projects": {"type": "integer"},
                "total_categories": {"type": "integer"}
            }
        }
    },
    "tags": [
        {"description": "Task management operations", "name": "Tasks"},
        {"description": "Team projects", "name": "Projects"},
        {"description": "Personal categories", "name": "Categories"},
        {"description": "Workspace chat and task comments", "name": "Chat"},
        {"description": "Workspaces and teams", "name": "Workspaces"},
        {"description": "Kanban boards, columns and their tasks", "name": "Boards"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TaskFlow API",
	Description:      "Tasks grouped under team projects and personal categories.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
