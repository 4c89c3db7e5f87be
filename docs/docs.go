// Package docs registers the swagger document served at /swagger/*any.
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
        "/ping": {
            "get": {"summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards": {
            "post": {"summary": "Start a listing wizard", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Listing not found"}}}
        },
        "/wizards/{id}": {
            "get": {"summary": "Wizard state and current step", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"summary": "Discard the wizard", "responses": {"204": {"description": "No Content"}}}
        },
        "/wizards/{id}/steps/{step}": {
            "get": {"summary": "Preview one step", "responses": {"200": {"description": "OK"}, "409": {"description": "Step not reached yet"}}}
        },
        "/wizards/{id}/draft": {
            "patch": {"summary": "Merge a partial update into the draft", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards/{id}/lists/{field}": {
            "put": {"summary": "Replace a comma separated list field", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards/{id}/weekdays/{day}": {
            "post": {"summary": "Toggle an available weekday", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards/{id}/next": {
            "post": {"summary": "Go to the next step", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards/{id}/back": {
            "post": {"summary": "Go to the previous step", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards/{id}/jump": {
            "post": {"summary": "Jump to a step", "responses": {"200": {"description": "OK"}, "409": {"description": "Step not reached yet"}}}
        },
        "/wizards/{id}/media/{slot}": {
            "post": {"summary": "Upload a media file into a slot", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}, "503": {"description": "Upload unavailable"}}}
        },
        "/wizards/{id}/media/{slot}/{index}": {
            "delete": {"summary": "Remove a media entry", "responses": {"200": {"description": "OK"}}}
        },
        "/wizards/{id}/submit": {
            "post": {"summary": "Submit the listing as draft or published", "responses": {"200": {"description": "OK"}, "409": {"description": "Submission in flight"}, "422": {"description": "Submission failed"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Vitrine Listing Wizard API",
	Description:      "Listing creation and edit wizard for providers, backed by DynamoDB sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
