// Package docs registers the Swagger specification for the POS service.
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
        "/api/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login with the store credential",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Catalog"],
                "summary": "List products, optionally filtered by ?q= name/SKU search",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Catalog"],
                "summary": "Add a product",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/api/products/low-stock": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Catalog"],
                "summary": "List products at or below their minimum stock",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/products/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Catalog"],
                "summary": "Get a product",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Catalog"],
                "summary": "Replace a product",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Catalog"],
                "summary": "Delete a product",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/cart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["POS"],
                "summary": "Get the session cart",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["POS"],
                "summary": "Clear the session cart",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/cart/items": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["POS"],
                "summary": "Add a product to the cart",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Stock exceeded"}
                }
            }
        },
        "/api/cart/items/{product_id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["POS"],
                "summary": "Set a cart line quantity",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Stock exceeded"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["POS"],
                "summary": "Remove a cart line",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/checkout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["POS"],
                "summary": "Commit the cart as a sale",
                "responses": {
                    "201": {"description": "Sale created"},
                    "400": {"description": "Empty cart"},
                    "409": {"description": "Insufficient stock"}
                }
            }
        },
        "/api/sales": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reports"],
                "summary": "List committed sales, newest first",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/reports/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reports"],
                "summary": "Revenue, cost, profit and counts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/reports/daily": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reports"],
                "summary": "Per-day sales series for the trailing window",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/reports/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reports"],
                "summary": "Download the sales report workbook",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/insights": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Insights"],
                "summary": "AI-generated business insights",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Retail POS API",
	Description:      "Single-store retail management: catalog, POS cart, checkout, reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
