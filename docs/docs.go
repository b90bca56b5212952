// Package docs registers the OpenAPI document served under /swagger. Keep it
// in sync with the handler annotations (swag init regenerates it).
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Operator login",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Logged in", "schema": {"$ref": "#/definitions/http.LoginResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/api/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Content API status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.successResponse"}}
                }
            }
        },
        "/api/content": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "All storefront content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.contentResponse"}}
                }
            }
        },
        "/api/content/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Content for one key",
                "parameters": [
                    {"type": "string", "example": "products", "description": "Content key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.contentResponse"}},
                    "404": {"description": "Unknown content key", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/api/cache": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Clear the content cache",
                "responses": {
                    "200": {"description": "Cache cleared", "schema": {"$ref": "#/definitions/http.successResponse"}},
                    "401": {"description": "Not authorized", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "admin@natnat.vn"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "http.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "operator": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "email": {"type": "string"},
                        "role": {"type": "string"}
                    }
                }
            }
        },
        "http.contentResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "key": {"type": "string", "example": "products"},
                "served_at": {"type": "integer", "example": 1767225600000},
                "data": {"type": "object"}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "code": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "Unknown content key"}
            }
        },
        "http.successResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Cache cleared"},
                "data": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flower Shop Content API",
	Description:      "Editable storefront content backed by a spreadsheet, with a two-tier cache",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
