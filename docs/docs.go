// Package docs holds the OpenAPI document served under /swagger/. Keep it in step with the
// godoc annotations on the controllers.
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
        "/auth-check": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the user the bearer token resolves to.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AuthCheckResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/cleanup-events": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes the caller's events whose event_date is more than 24 hours in the past.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete stale events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CleanupEventsResponse"}},
                    "400": {"description": "store rejected the delete", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/create-event": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates an event owned by the caller. event_date accepts RFC 3339 or YYYY-MM-DD.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "missing title or event_date, invalid event_date format, or store rejection", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/get-events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's events ordered by event_date ascending.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List my events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListEventsResponse"}},
                    "400": {"description": "store rejected the query", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/login-user": {
            "post": {
                "description": "Exchange email and password for an access token and a refresh token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.LoginResponse"}},
                    "400": {"description": "missing email or password", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "invalid login credentials or the platform's reason", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/upload-file": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores a PNG under \"{user_id}-{unix_ms}.png\" and returns its public URL.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["files"],
                "summary": "Upload a PNG",
                "parameters": [
                    {"type": "file", "description": "PNG image", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UploadedFile"}},
                    "400": {"description": "missing file field or only PNG files allowed", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "storage rejected the upload", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AuthCheckResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/domain.User"}}
        },
        "controllers.CleanupEventsResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "cutoff": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "controllers.CreateEventRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "event_date": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "controllers.ListEventsResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "user_id": {"type": "string"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.LoginResponse": {
            "type": "object",
            "properties": {
                "refreshToken": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "event_date": {"type": "string"},
                "id": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "domain.UploadedFile": {
            "type": "object",
            "properties": {
                "fileName": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "app_metadata": {"type": "object", "additionalProperties": true},
                "aud": {"type": "string"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "last_sign_in_at": {"type": "string"},
                "role": {"type": "string"},
                "user_metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Events Gateway API",
	Description:      "HTTP functions in front of a managed auth, row store and blob storage platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
