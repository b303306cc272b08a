// Package docs registers the OpenAPI description served at /swagger/.
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
        "/learners/{learnerID}/attempts": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attempts"
                ],
                "summary": "Start a quiz attempt",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Subject and quantity",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.StartAttemptRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.StartAttemptResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/learners/{learnerID}/attempts/{attemptID}/finish": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attempts"
                ],
                "summary": "Finish a quiz attempt",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Attempt ID",
                        "name": "attemptID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Answer counts",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.FinishAttemptRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.FinishAttemptResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/learners/{learnerID}/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learners"
                ],
                "summary": "Get learner stats",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.LearnerStatsResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/learners/{learnerID}/performance": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learners"
                ],
                "summary": "Get learner performance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.LearnerPerformanceResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/learners/{learnerID}/xp/deductions": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learners"
                ],
                "summary": "Deduct XP",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Amount to deduct",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.DeductXPRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.DeductXPResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/learners/{learnerID}/xp/ledger": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learners"
                ],
                "summary": "Get XP ledger",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.LedgerEntryResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/learners/{learnerID}/rank": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Learners"
                ],
                "summary": "Get learner rank",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.RankResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/learners/{learnerID}/accuracy": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get learner accuracy series",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "month",
                        "description": "day, month or year",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/analytics.Point"
                            }
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/learners/{learnerID}/subjects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get learner subject performance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learnerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/analytics.SubjectAccuracy"
                            }
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analytics/accuracy": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get global accuracy series",
                "parameters": [
                    {
                        "type": "string",
                        "default": "month",
                        "description": "day, month or year",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/analytics.Point"
                            }
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/analytics/subjects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get global subject performance",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/analytics.SubjectAccuracy"
                            }
                        }
                    }
                }
            }
        },
        "/leaderboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get XP leaderboard",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 10,
                        "description": "Maximum rows, 0 for all",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.LeaderboardEntryResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/subjects/{subjectID}/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analytics"
                ],
                "summary": "Get subject stats",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Subject ID",
                        "name": "subjectID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Learner ID",
                        "name": "learner_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SubjectStatsResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/admin/learners": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "List learners with progress counts",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.RosterEntryResponse"
                            }
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analytics.Point": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "integer"
                }
            }
        },
        "analytics.MonthlyPoint": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "analytics.SubjectAccuracy": {
            "type": "object",
            "properties": {
                "subject_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "accuracy": {
                    "type": "integer"
                },
                "attempts": {
                    "type": "integer"
                }
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                }
            }
        },
        "api.StartAttemptRequest": {
            "type": "object",
            "required": [
                "subject_id"
            ],
            "properties": {
                "subject_id": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "api.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.StartAttemptResponse": {
            "type": "object",
            "properties": {
                "attempt_id": {
                    "type": "string"
                },
                "total_questions": {
                    "type": "integer"
                },
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.QuestionResponse"
                    }
                }
            }
        },
        "api.FinishAttemptRequest": {
            "type": "object",
            "properties": {
                "correct": {
                    "type": "integer"
                },
                "attempted": {
                    "type": "integer"
                }
            }
        },
        "api.AttemptResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "learner_id": {
                    "type": "string"
                },
                "subject_id": {
                    "type": "string"
                },
                "total_questions": {
                    "type": "integer"
                },
                "attempted_questions": {
                    "type": "integer"
                },
                "correct_answers": {
                    "type": "integer"
                },
                "score": {
                    "type": "integer"
                },
                "xp_gained": {
                    "type": "integer"
                },
                "grade": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "closed_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "api.SubjectResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "api.FinishAttemptResponse": {
            "type": "object",
            "properties": {
                "attempt": {
                    "$ref": "#/definitions/api.AttemptResponse"
                },
                "suggestions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.SubjectResponse"
                    }
                }
            }
        },
        "api.LearnerStatsResponse": {
            "type": "object",
            "properties": {
                "average_score": {
                    "type": "number"
                },
                "total_attempts": {
                    "type": "integer"
                },
                "total_xp": {
                    "type": "integer"
                },
                "streak": {
                    "type": "integer"
                },
                "last_activity": {
                    "type": "string",
                    "format": "date-time"
                },
                "strongest_subject": {
                    "$ref": "#/definitions/api.SubjectResponse"
                }
            }
        },
        "api.SubjectProgressResponse": {
            "type": "object",
            "properties": {
                "subject_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "progress": {
                    "type": "number"
                },
                "quiz_attempted": {
                    "type": "integer"
                },
                "average_score": {
                    "type": "number"
                }
            }
        },
        "api.LearnerPerformanceResponse": {
            "type": "object",
            "properties": {
                "subjects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.SubjectProgressResponse"
                    }
                },
                "subjects_covered": {
                    "type": "integer"
                }
            }
        },
        "api.DeductXPRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                }
            }
        },
        "api.WithdrawalResponse": {
            "type": "object",
            "properties": {
                "attempt_id": {
                    "type": "string"
                },
                "amount": {
                    "type": "integer"
                }
            }
        },
        "api.DeductXPResponse": {
            "type": "object",
            "properties": {
                "requested": {
                    "type": "integer"
                },
                "deducted": {
                    "type": "integer"
                },
                "remaining_unfulfilled": {
                    "type": "integer"
                },
                "withdrawals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.WithdrawalResponse"
                    }
                }
            }
        },
        "api.LedgerEntryResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "attempt_id": {
                    "type": "string"
                },
                "delta": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "api.RankResponse": {
            "type": "object",
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "rank": {
                    "type": "integer"
                }
            }
        },
        "api.LeaderboardEntryResponse": {
            "type": "object",
            "properties": {
                "rank": {
                    "type": "integer"
                },
                "learner_id": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "xp": {
                    "type": "integer"
                }
            }
        },
        "api.RosterEntryResponse": {
            "type": "object",
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "quiz_attempts": {
                    "type": "integer"
                },
                "xp": {
                    "type": "integer"
                },
                "active_subjects": {
                    "type": "integer"
                }
            }
        },
        "api.SubjectStatsResponse": {
            "type": "object",
            "properties": {
                "subject": {
                    "$ref": "#/definitions/api.SubjectResponse"
                },
                "quiz_attempted": {
                    "type": "integer"
                },
                "average_score": {
                    "type": "number"
                },
                "top_score": {
                    "type": "integer"
                },
                "monthly_accuracy": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.MonthlyPoint"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Quiz Engine API",
	Description:      "Quiz attempts, XP ledger and learning analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
