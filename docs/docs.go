// Package docs содержит OpenAPI-описание HTTP API для swag
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
                "description": "Проверка каталогов входных и выходных файлов",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "healthy или degraded", "schema": {"$ref": "#/definitions/monitoring.HealthCheckResult"}},
                    "503": {"description": "unhealthy", "schema": {"$ref": "#/definitions/monitoring.HealthCheckResult"}}
                }
            }
        },
        "/api/runs": {
            "post": {
                "description": "Выполняет консолидацию, анализ и файл импорта; одновременно выполняется один прогон",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Start reconciliation run",
                "responses": {
                    "200": {"description": "Итог прогона", "schema": {"$ref": "#/definitions/handlers.RunRecord"}},
                    "409": {"description": "Прогон уже выполняется", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "422": {"description": "Ошибка входных файлов", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "429": {"description": "Превышен лимит запусков", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "500": {"description": "Ошибка записи результатов", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/api/runs/last": {
            "get": {
                "description": "Итог последнего завершенного прогона вместе с его событиями",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Last run",
                "responses": {
                    "200": {"description": "Последний прогон", "schema": {"$ref": "#/definitions/handlers.RunRecord"}},
                    "404": {"description": "Прогонов еще не было", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/api/outputs/{artifact}": {
            "get": {
                "description": "Скачивание выходного файла последнего прогона",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["outputs"],
                "summary": "Download artifact",
                "parameters": [
                    {
                        "enum": ["consolidated", "analysis", "physical-count"],
                        "type": "string",
                        "description": "Имя артефакта",
                        "name": "artifact",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "xlsx-файл", "schema": {"type": "file"}},
                    "404": {"description": "Неизвестный или еще не созданный файл", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "409": {"description": "Прогон выполняется", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"},
                "details": {}
            }
        },
        "pipeline.Event": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["info", "success", "warning", "error"]}
            }
        },
        "pipeline.SourceReport": {
            "type": "object",
            "properties": {
                "file": {"type": "string"},
                "origin": {"type": "string"},
                "header_row": {"type": "integer"},
                "rows": {"type": "integer"},
                "dropped": {"type": "integer"},
                "malformed": {"type": "integer"}
            }
        },
        "pipeline.Artifacts": {
            "type": "object",
            "properties": {
                "consolidated": {"type": "string"},
                "analysis": {"type": "string"},
                "physical_count": {"type": "string"}
            }
        },
        "inventory.SummaryStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "non_zero": {"type": "integer"},
                "system_overstates": {"type": "integer"},
                "manual_overstates": {"type": "integer"},
                "sum_difference": {"type": "number"}
            }
        },
        "handlers.RunRecord": {
            "type": "object",
            "properties": {
                "run_id": {"type": "string"},
                "started_at": {"type": "string"},
                "finished_at": {"type": "string"},
                "sources": {"type": "array", "items": {"$ref": "#/definitions/pipeline.SourceReport"}},
                "consolidated_rows": {"type": "integer"},
                "summary": {"$ref": "#/definitions/inventory.SummaryStats"},
                "export_rows": {"type": "integer"},
                "artifacts": {"$ref": "#/definitions/pipeline.Artifacts"},
                "error": {"type": "string"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/pipeline.Event"}}
            }
        },
        "monitoring.ComponentHealth": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "status": {"type": "string"},
                "message": {"type": "string"},
                "timestamp": {"type": "string"},
                "latency": {"type": "integer"}
            }
        },
        "monitoring.HealthCheckResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["healthy", "degraded", "unhealthy"]},
                "timestamp": {"type": "string"},
                "uptime": {"type": "integer"},
                "version": {"type": "string"},
                "goroutines": {"type": "integer"},
                "components": {"type": "object", "additionalProperties": {"$ref": "#/definitions/monitoring.ComponentHealth"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventario API",
	Description:      "Сверка ручного пересчета марок с выгрузкой учетной системы",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
