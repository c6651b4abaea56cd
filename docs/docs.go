// Package docs holds the OpenAPI document served under /docs.
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
        "/api/v1/posts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Submit a post with optional media",
                "parameters": [
                    {"type": "string", "name": "X-Submission-Id", "in": "header"},
                    {"type": "string", "name": "submission_id", "in": "formData"},
                    {"type": "string", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "name": "content", "in": "formData", "required": true},
                    {"type": "file", "name": "media[]", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Published", "schema": {"$ref": "#/definitions/submission.Outcome"}},
                    "202": {"description": "Held for review", "schema": {"$ref": "#/definitions/submission.Outcome"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Submission in progress", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Rejected", "schema": {"$ref": "#/definitions/submission.Outcome"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/submission.Outcome"}},
                    "503": {"description": "Dependency unavailable", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/posts/{id}/comments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Submissions"],
                "summary": "Submit a comment on a post",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Published", "schema": {"$ref": "#/definitions/submission.Outcome"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Post not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Rejected", "schema": {"$ref": "#/definitions/submission.Outcome"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/submission.Outcome"}}
                }
            }
        },
        "/api/v1/moderation/text": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Moderation"],
                "summary": "Moderate text without persisting it",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ModerateTextRequest"}}
                ],
                "responses": {
                    "200": {"description": "Verdict", "schema": {"$ref": "#/definitions/response.ModerateTextResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "503": {"description": "Dependency unavailable", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/media/upload-url": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Create a presigned upload URL",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateUploadURLRequest"}}
                ],
                "responses": {
                    "201": {"description": "Presigned upload"},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/audit-logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Audit"],
                "summary": "List audit entries in a time window",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "name": "action", "in": "query"},
                    {"type": "string", "name": "target_id", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Entries", "schema": {"$ref": "#/definitions/response.ListAuditLogsResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Moderator role required", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/audit-logs/{id}/resolve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Audit"],
                "summary": "Resolve a held submission",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ResolveAuditLogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Resolution entry"},
                    "404": {"description": "Entry not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Already resolved", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Dependency health",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"$ref": "#/definitions/response.HealthResponse"}},
                    "503": {"description": "Degraded", "schema": {"$ref": "#/definitions/response.HealthResponse"}}
                }
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Build information",
                "responses": {"200": {"description": "Version"}}
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "submission.Outcome": {
            "type": "object",
            "properties": {
                "submission_id": {"type": "string"},
                "success": {"type": "boolean"},
                "reason": {"type": "string"},
                "message": {"type": "string"},
                "state": {"type": "string"},
                "id": {"type": "string"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "media_keys": {"type": "array", "items": {"type": "string"}}
            }
        },
        "request.CreateCommentRequest": {
            "type": "object",
            "properties": {
                "submission_id": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "request.ModerateTextRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "content_type": {"type": "string", "enum": ["post", "comment", "title"]}
            }
        },
        "request.CreateUploadURLRequest": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "content_type": {"type": "string"}
            }
        },
        "request.ResolveAuditLogRequest": {
            "type": "object",
            "properties": {
                "decision": {"type": "string", "enum": ["approved", "rejected"]},
                "reason": {"type": "string"}
            }
        },
        "response.ModerateTextResponse": {
            "type": "object",
            "properties": {
                "decision": {"type": "string"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "scores": {"type": "object", "additionalProperties": {"type": "number"}},
                "confidence": {"type": "number"},
                "reasoning": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "response.ListAuditLogsResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "count": {"type": "integer"},
                "entries": {"type": "array", "items": {"type": "object"}}
            }
        },
        "response.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.4.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TrustPost API",
	Description:      "Content moderation and media safety for user submissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
