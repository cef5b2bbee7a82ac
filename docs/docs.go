// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/billing-api/main.go
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
        "/calculate-billing-date": {
            "post": {
                "tags": ["Billing"],
                "summary": "Calculate the next billing date",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/goals/discover": {
            "post": {
                "tags": ["Goals"],
                "summary": "Resolve a goal call name to a goal id",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/goals/test": {
            "post": {
                "tags": ["Goals"],
                "summary": "Dispatch a test goal for a contact",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/keap-goals/health": {
            "get": {
                "tags": ["Goals"],
                "summary": "Goal integration readiness",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/oauth/authorize": {
            "get": {
                "tags": ["OAuth"],
                "summary": "Redirect to the CRM consent page",
                "responses": {"302": {"description": "Found"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/oauth/callback": {
            "get": {
                "tags": ["OAuth"],
                "summary": "Exchange the authorization code",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/oauth/status": {
            "get": {
                "tags": ["OAuth"],
                "summary": "Token status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/oauth/refresh": {
            "post": {
                "tags": ["OAuth"],
                "summary": "Refresh the access token now",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/clickup-webhook": {
            "post": {
                "tags": ["Webhook"],
                "summary": "Receive a ClickUp task event",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/manual-trigger/{taskId}": {
            "post": {
                "tags": ["Leave"],
                "summary": "Compute the leave time of a task now",
                "parameters": [{"type": "string", "name": "taskId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/task-fields/{taskId}": {
            "get": {
                "tags": ["Leave"],
                "summary": "List the custom fields of a task",
                "parameters": [{"type": "string", "name": "taskId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Billing Automation API",
	Description:      "Billing date calculation with CRM goal dispatch, and ClickUp leave-time automation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
