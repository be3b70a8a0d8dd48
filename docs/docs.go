// Package docs registers the OpenAPI document served under /swagger.
// Regenerate the full per-procedure document with `swag init -g cmd/server/main.go`.
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
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/serializer.Response"}}}
            }
        },
        "/rpc/{procedure}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rpc"],
                "summary": "Run a query procedure",
                "parameters": [
                    {"type": "string", "description": "Procedure name, e.g. project.getById", "name": "procedure", "in": "path", "required": true},
                    {"type": "string", "description": "JSON encoded input, either the value or {\"0\": value}", "name": "input", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "400": {"description": "BAD_REQUEST", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "404": {"description": "NOT_FOUND", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "405": {"description": "METHOD_NOT_SUPPORTED", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rpc"],
                "summary": "Run a mutation procedure",
                "parameters": [
                    {"type": "string", "description": "Procedure name, e.g. task.updateOrder", "name": "procedure", "in": "path", "required": true},
                    {"description": "Input, either the value or {\"0\": value}", "name": "payload", "in": "body", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "400": {"description": "BAD_REQUEST", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "404": {"description": "NOT_FOUND", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "405": {"description": "METHOD_NOT_SUPPORTED", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        }
    },
    "definitions": {
        "serializer.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "error": {"type": "string"},
                "msg": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Time Tracker API",
	Description:      "Projects, tasks, time logs and calendar views exposed as named procedures.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
