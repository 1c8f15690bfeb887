package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academy Timetable API",
        "description": "Weekly timetable assignment engine for language academy staff",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Timetables", "description": "Timetable generation, diffing, and configuration defaults"},
        {"name": "Observability", "description": "Service metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/timetables/generate": {
            "post": {
                "tags": ["Timetables"],
                "summary": "Generate a weekly timetable",
                "description": "Runs one greedy assignment pass over the supplied slot configuration. Unmet demand is reported as warnings with UNASSIGNED placeholders, never as an error.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid slot configuration", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetables/diff": {
            "post": {
                "tags": ["Timetables"],
                "summary": "Compare two timetable snapshots",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DiffTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetables/options": {
            "get": {
                "tags": ["Timetables"],
                "summary": "Slot configuration defaults",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/snapshot": {
            "get": {
                "tags": ["Observability"],
                "summary": "Aggregated service metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "TeacherConstraint": {
            "type": "object",
            "properties": {
                "unavailable": {"type": "array", "items": {"type": "string"}, "example": ["MONDAY-3", "FRIDAY-7"]},
                "homeroomDisabled": {"type": "boolean"},
                "maxHomerooms": {"type": "integer"}
            }
        },
        "GenerateTimetableRequest": {
            "type": "object",
            "required": ["homeroomPool", "roundClassCounts"],
            "properties": {
                "homeroomPool": {"type": "array", "items": {"type": "string"}},
                "foreignPool": {"type": "array", "items": {"type": "string"}},
                "constraints": {"type": "object", "additionalProperties": {"$ref": "#/definitions/TeacherConstraint"}},
                "fixedHomerooms": {"type": "object", "additionalProperties": {"type": "string"}},
                "roundClassCounts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "examPeriods": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "number"}}},
                "includeHomeroomOwnersInKorean": {"type": "boolean"},
                "days": {"type": "array", "items": {"type": "string"}}
            }
        },
        "DiffTimetableRequest": {
            "type": "object",
            "required": ["base", "target"],
            "properties": {
                "base": {"type": "object"},
                "target": {"type": "object"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
