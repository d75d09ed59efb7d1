// Package docs holds the swagger document served at /swagger.
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
        "/api/v1/moderations": {
            "get": {
                "description": "Returns recent moderation records, newest first.",
                "produces": ["application/json"],
                "tags": ["Moderation"],
                "summary": "List moderation records",
                "parameters": [
                    {"type": "string", "description": "Filter by status (clean/flagged/server_error/transport_error)", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 20, max: 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Sends text and image URLs to Iffy and stores the verdict.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Moderation"],
                "summary": "Moderate content",
                "parameters": [
                    {"description": "Content to moderate", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.moderateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.moderateResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Upstream error, data.record holds the stored record", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/moderations/{id}": {
            "get": {
                "description": "Returns a single moderation record by its ID.",
                "produces": ["application/json"],
                "tags": ["Moderation"],
                "summary": "Get moderation record",
                "parameters": [
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.detailResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        }
    },
    "definitions": {
        "http.contentReq": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string", "enum": ["text", "image_url"]},
                "text": {"type": "string"},
                "url": {"type": "string"},
                "image_url": {"$ref": "#/definitions/http.imageURLReq"}
            }
        },
        "http.imageURLReq": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "http.moderateReq": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/http.contentReq"}}
            }
        },
        "http.contentResp": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "text": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "http.recordResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string"},
                "iffy": {"type": "boolean"},
                "reasoning": {"type": "string"},
                "error": {"type": "string"},
                "upstream_status": {"type": "integer"},
                "content": {"type": "array", "items": {"$ref": "#/definitions/http.contentResp"}},
                "latency_ms": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "http.moderateResp": {
            "type": "object",
            "properties": {"record": {"$ref": "#/definitions/http.recordResp"}}
        },
        "http.detailResp": {
            "type": "object",
            "properties": {"record": {"$ref": "#/definitions/http.recordResp"}}
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "records": {"type": "array", "items": {"$ref": "#/definitions/http.recordResp"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Iffy Moderation API",
	Description:      "Authenticated gateway in front of the Iffy content-moderation API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
