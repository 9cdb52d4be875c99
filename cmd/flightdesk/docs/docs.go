// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/v1/flights/search": {
            "post": {
                "description": "Forwards the search to the upstream flight API and returns normalized itineraries with the raw response",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search flights",
                "parameters": [
                    {
                        "description": "Search form",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/flight.SearchForm"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/flights/searches/{id}": {
            "get": {
                "description": "Returns the stored payload and upstream envelope of a recent search",
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Raw search response",
                "parameters": [
                    {"type": "string", "description": "Search ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/flight.SearchRecord"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "flight.Carrier": {
            "type": "object",
            "properties": {
                "abbreviation": {"type": "string"},
                "flight_number": {"type": "string"},
                "logo_url": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "flight.Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "flight.FlightGroup": {
            "type": "object",
            "properties": {
                "routes": {"type": "array", "items": {"$ref": "#/definitions/flight.Route"}}
            }
        },
        "flight.Itinerary": {
            "type": "object",
            "properties": {
                "flight_groups": {"type": "array", "items": {"$ref": "#/definitions/flight.FlightGroup"}},
                "journey_type": {"type": "string"},
                "price": {"type": "string"},
                "summary": {"type": "string"}
            }
        },
        "flight.Route": {
            "type": "object",
            "properties": {
                "arrival_time": {"type": "string"},
                "carrier": {"$ref": "#/definitions/flight.Carrier"},
                "departure_time": {"type": "string"},
                "destination": {"type": "string"},
                "flight_time": {"type": "string"},
                "origin": {"type": "string"},
                "stops": {"type": "string"}
            }
        },
        "flight.SearchForm": {
            "type": "object",
            "required": ["arrival", "departure"],
            "properties": {
                "adults": {"type": "integer", "maximum": 9, "minimum": 1, "example": 1},
                "arrival": {"type": "string", "example": "CGP"},
                "cabin_class": {"type": "string", "enum": ["Economy", "Premium-Economy", "Business", "First-Class"], "example": "Economy"},
                "children": {"type": "integer", "maximum": 9, "minimum": 0, "example": 0},
                "departure": {"type": "string", "example": "DAC"},
                "departure_date": {"type": "string", "example": "2025-06-06"},
                "infants": {"type": "integer", "maximum": 9, "minimum": 0, "example": 0},
                "journey_type": {"type": "string", "enum": ["OneWay", "RoundTrip", "MultiCity"], "example": "RoundTrip"},
                "return_date": {"type": "string", "example": "2025-06-13"}
            }
        },
        "flight.SearchRecord": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "envelope": {"$ref": "#/definitions/flight.Envelope"},
                "id": {"type": "string"},
                "payload": {"type": "object"}
            }
        },
        "flight.SearchResponse": {
            "type": "object",
            "properties": {
                "empty_message": {"type": "string"},
                "itineraries": {"type": "array", "items": {"$ref": "#/definitions/flight.Itinerary"}},
                "message": {"type": "string"},
                "raw": {"$ref": "#/definitions/flight.Envelope"},
                "search_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Flightdesk API",
	Description:      "Flight search over the InnoTravel API with normalized itineraries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
