// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/": {"get": {"tags": ["Auth"], "summary": "Landing", "responses": {"303": {"description": "See Other"}}}},
        "/health": {"get": {"tags": ["Health"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/rates": {"get": {"tags": ["Rates"], "summary": "Gold rates", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}},
        "/estimate": {"post": {"tags": ["Rates"], "summary": "Loan estimate", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/login": {"post": {"tags": ["Auth"], "summary": "Login", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}},
        "/login/oauth/callback": {"get": {"tags": ["Auth"], "summary": "OAuth callback", "parameters": [{"type": "string", "name": "token", "in": "query"}, {"type": "string", "name": "error", "in": "query"}], "responses": {"303": {"description": "See Other"}}}},
        "/signup": {"post": {"tags": ["Auth"], "summary": "Signup", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/forgot-password": {"post": {"tags": ["Auth"], "summary": "Forgot password", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/logout": {"post": {"tags": ["Auth"], "summary": "Logout", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/change-password": {"post": {"tags": ["Auth"], "summary": "Change password", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}},
        "/dashboard": {"get": {"tags": ["Customer"], "summary": "Customer dashboard", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/kyc": {
            "get": {"tags": ["Customer"], "summary": "KYC status", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Customer"], "summary": "Submit KYC", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/loan-application": {
            "get": {"tags": ["Customer"], "summary": "Loan application prefill", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Customer"], "summary": "Submit loan application", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/loans/{rid}": {"get": {"tags": ["Customer"], "summary": "Customer loan detail", "parameters": [{"type": "string", "name": "rid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/loans/{rid}/submit-gold": {"post": {"tags": ["Customer"], "summary": "Submit gold", "parameters": [{"type": "string", "name": "rid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/loans/{rid}/offer-decision": {"post": {"tags": ["Customer"], "summary": "Offer decision", "parameters": [{"type": "string", "name": "rid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/loans/{rid}/pay-fine": {"post": {"tags": ["Customer"], "summary": "Pay fine", "parameters": [{"type": "string", "name": "rid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/loans/{rid}/re-apply": {"post": {"tags": ["Customer"], "summary": "Re-apply", "parameters": [{"type": "string", "name": "rid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/employee/dashboard": {"get": {"tags": ["Employee"], "summary": "Employee dashboard", "parameters": [{"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/employee/change-password": {"post": {"tags": ["Auth"], "summary": "Change password", "responses": {"200": {"description": "OK"}}}},
        "/employee/create": {"post": {"tags": ["Employee"], "summary": "Create employee", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/employee/loan-details/{id}": {"get": {"tags": ["Employee"], "summary": "Employee loan detail", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/employee/loan-details/{id}/verify": {"post": {"tags": ["Employee"], "summary": "Verify application", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/employee/loan-details/{id}/gold-receipt": {"post": {"tags": ["Employee"], "summary": "Gold receipt", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/employee/loan-details/{id}/offer": {"post": {"tags": ["Employee"], "summary": "Offer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/employee/loan-details/{id}/disburse": {"post": {"tags": ["Employee"], "summary": "Disburse", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/employee/loan-details/{id}/collect-gold": {"post": {"tags": ["Employee"], "summary": "Collect gold", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Gold Loan Portal API",
	Description:      "Session-bound portal for gold loan customers and bank staff",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
