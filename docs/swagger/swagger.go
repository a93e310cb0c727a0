// Package swagger содержит спецификацию OpenAPI для Place Microservice.
// Файл поддерживается вручную вместе с аннотациями в handler-пакете.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/add": {
            "post": {
                "security": [{"api_key": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Создание места",
                "parameters": [
                    {"type": "number", "name": "longitude", "in": "query", "required": true},
                    {"type": "number", "name": "latitude", "in": "query", "required": true},
                    {"type": "array", "items": {"type": "string"}, "name": "tags", "in": "query"},
                    {"type": "file", "name": "photos", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Место по идентификатору",
                "parameters": [
                    {"type": "string", "name": "ID", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/get": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Радиусный поиск мест",
                "parameters": [
                    {"type": "number", "name": "latitude", "in": "query", "required": true},
                    {"type": "number", "name": "longitude", "in": "query", "required": true},
                    {"type": "number", "name": "radius", "in": "query", "required": true},
                    {"type": "integer", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stats"],
                "summary": "Статистика по местам",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка работоспособности",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "securityDefinitions": {
        "api_key": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Place Microservice API",
	Description:      "Сервис обмена геоточками: аутентифицированные пользователи добавляют места с тегами и фотографиями, клиенты ищут места по радиусу.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
