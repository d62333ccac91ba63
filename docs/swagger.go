// Package docs registers the swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/signup": {
            "post": {
                "summary": "Issue a fresh opaque token",
                "responses": {"200": {"description": "token issued"}}
            }
        },
        "/api/boards": {
            "get": {
                "security": [{"BearerAuth": []}],
                "summary": "List the user's boards without tasks",
                "responses": {"200": {"description": "board list"}, "401": {"description": "bad token"}}
            }
        },
        "/api/boards/{board_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "summary": "Get a board with its tasks",
                "responses": {"200": {"description": "board"}, "401": {"description": "bad token"}, "404": {"description": "no such board"}}
            }
        },
        "/api/boards/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "Create a board",
                "responses": {"200": {"description": "created board"}, "400": {"description": "empty or duplicate name"}, "401": {"description": "bad token"}}
            }
        },
        "/api/boards/{board_id}/edit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "Rename a board",
                "responses": {"200": {"description": "updated board"}, "400": {"description": "empty or unchanged name"}, "401": {"description": "bad token"}, "404": {"description": "no such board"}}
            }
        },
        "/api/boards/{board_id}/delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "Delete a board and its tasks",
                "responses": {"200": {"description": "deleted board"}, "401": {"description": "bad token"}, "404": {"description": "no such board"}}
            }
        },
        "/api/boards/{board_id}/tasks/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "Create a task on a board",
                "responses": {"200": {"description": "created task"}, "400": {"description": "missing field"}, "401": {"description": "bad token"}, "404": {"description": "no such board"}}
            }
        },
        "/api/boards/{board_id}/tasks/{task_id}/edit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "Partially update a task",
                "responses": {"200": {"description": "updated task"}, "400": {"description": "no fields provided"}, "401": {"description": "bad token"}, "404": {"description": "no such task"}}
            }
        },
        "/api/boards/{board_id}/tasks/{task_id}/delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "Delete a task",
                "responses": {"200": {"description": "deleted task"}, "401": {"description": "bad token"}, "404": {"description": "no such task"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Board API",
	Description:      "Multi-tenant task-board backend: opaque-token users, per-user boards, per-board tasks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
