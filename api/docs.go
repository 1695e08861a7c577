// Package api registers the Swagger specification served under /docs.
// The spec is maintained by hand alongside the handler annotations.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK"}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["v1"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/alerts": {
            "get": {
                "description": "Returns all alerts of the session, newest first",
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "List alerts",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Alerts"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/budget": {
            "get": {
                "description": "Returns the active budget with its items",
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Get budget",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "description": "Replaces the active budget. An empty request body creates a fresh starter budget.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Create budget",
                "parameters": [{"description": "Budget", "name": "budget", "in": "body"}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "patch": {
                "description": "Updates the active budget. Only values to be updated need to be specified, the totals are recomputed on every change.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Update budget",
                "parameters": [{"description": "Budget", "name": "budget", "in": "body", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "description": "Discards the active budget",
                "tags": ["Budget"],
                "summary": "Delete budget",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budget"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/budget/draft": {
            "post": {
                "description": "Derives a draft budget from the historical data and the current forecasts and makes it the active budget. Requires historical data or a forecast to exist.",
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Generate draft budget",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"},
                    "503": {"description": "Service Unavailable"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budget"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/budget/items": {
            "post": {
                "description": "Adds an item to the active budget. The totals are recomputed immediately.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Create budget item",
                "parameters": [{"description": "Budget item", "name": "item", "in": "body", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budget"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/budget/items/{id}": {
            "patch": {
                "description": "Updates an item of the active budget. Only values to be updated need to be specified, the totals are recomputed on every change.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget"],
                "summary": "Update budget item",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"description": "Budget item", "name": "item", "in": "body", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "description": "Removes an item from the active budget. The totals are recomputed immediately.",
                "tags": ["Budget"],
                "summary": "Delete budget item",
                "parameters": [{"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budget"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/forecasts": {
            "get": {
                "description": "Returns the current forecasts for all metrics",
                "produces": ["application/json"],
                "tags": ["Forecasts"],
                "summary": "List forecasts",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "description": "Regenerates the forecasts for all metrics together with the recommendations. Either all of them are replaced or none.",
                "produces": ["application/json"],
                "tags": ["Forecasts"],
                "summary": "Refresh forecasts",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"},
                    "503": {"description": "Service Unavailable"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Forecasts"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/forecasts/{kind}": {
            "get": {
                "description": "Returns the current forecast for a single metric",
                "produces": ["application/json"],
                "tags": ["Forecasts"],
                "summary": "Get forecast",
                "parameters": [{"type": "string", "description": "Forecast kind, one of 'revenue', 'expenses', 'cashflow'", "name": "kind", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Forecasts"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/historical": {
            "get": {
                "description": "Returns the historical data set in period order",
                "produces": ["application/json"],
                "tags": ["Historical"],
                "summary": "List historical data",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "description": "Replaces the historical data set wholesale and triggers a forecast refresh. At least one record is required.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Historical"],
                "summary": "Replace historical data",
                "parameters": [{"description": "Historical data", "name": "records", "in": "body", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Historical"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/import": {
            "post": {
                "description": "Parses an uploaded CSV statement into the historical data set and triggers a forecast refresh. Without a file, the built-in sample data set is loaded.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Import"],
                "summary": "Import statement",
                "parameters": [{"type": "file", "description": "Statement to import", "name": "file", "in": "formData"}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Import"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/recommendations": {
            "get": {
                "description": "Returns the recommendations produced by the last refresh",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "List recommendations",
                "responses": {"200": {"description": "OK"}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Recommendations"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/scenarios": {
            "get": {
                "description": "Returns the scenario history together with the result history, both in append order",
                "produces": ["application/json"],
                "tags": ["Scenarios"],
                "summary": "List scenarios",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "description": "Analyzes a scenario against the active budget and appends it to the history. Requires an active budget.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Scenarios"],
                "summary": "Run scenario",
                "parameters": [{"description": "Scenario", "name": "scenario", "in": "body", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"},
                    "503": {"description": "Service Unavailable"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Scenarios"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/state": {
            "get": {
                "description": "Returns the current view and the in-flight engine operations",
                "produces": ["application/json"],
                "tags": ["State"],
                "summary": "Get state",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "description": "Switches the current view",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["State"],
                "summary": "Update state",
                "parameters": [{"description": "State", "name": "state", "in": "body", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["State"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "BudgetAI backend",
	Description:      "The backend for BudgetAI, an AI-assisted budgeting and forecasting dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
