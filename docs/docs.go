// Package docs registers the OpenAPI document of the API with swag.
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
        "/v1/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List customers",
                "parameters": [{"type": "integer", "description": "Maximum number of results (default 10)", "name": "num", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.customerResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Register a customer",
                "parameters": [{"description": "Customer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerCustomerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/v1/customers/{id}": {
            "patch": {
                "description": "Only keys present in the body are written. A value that breaks its type rule fails the whole call.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Partially update a customer",
                "parameters": [
                    {"type": "integer", "description": "Person id", "name": "id", "in": "path", "required": true},
                    {"description": "Sparse fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.compositeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.compositeResponse"}}
                }
            }
        },
        "/v1/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List employees",
                "parameters": [{"type": "integer", "description": "Maximum number of results (default 10)", "name": "num", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.employeeResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Register an employee",
                "parameters": [{"description": "Employee", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerEmployeeRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/v1/employees/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Partially update an employee",
                "parameters": [
                    {"type": "integer", "description": "Person id", "name": "id", "in": "path", "required": true},
                    {"description": "Sparse fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateEmployeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.compositeResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.compositeResponse"}}
                }
            }
        },
        "/v1/people": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List people",
                "parameters": [{"type": "integer", "description": "Maximum number of results (default 10)", "name": "num", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.personResponse"}}}
                }
            },
            "delete": {
                "description": "Customers, employees and credentials are removed with them.",
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Delete every person",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.deleteResponse"}}}
            }
        },
        "/v1/people/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Delete a person and its dependents",
                "parameters": [{"type": "integer", "description": "Person id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.deleteResponse"}}}
            }
        },
        "/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List categories",
                "parameters": [{"type": "integer", "description": "Maximum number of results (default 10)", "name": "num", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.categoryResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Add a category",
                "parameters": [{"description": "Category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.categoryRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/v1/categories/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Rename a category",
                "parameters": [
                    {"type": "integer", "description": "Category id", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.categoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "delete": {
                "description": "Fails (deleted=false) while items still reference the category.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Delete a category",
                "parameters": [{"type": "integer", "description": "Category id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.deleteResponse"}}}
            }
        },
        "/v1/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List items with their category",
                "parameters": [{"type": "integer", "description": "Maximum number of results (default 10)", "name": "num", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.itemResponse"}}}
                }
            },
            "post": {
                "description": "The category is named and must already exist.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Add an item",
                "parameters": [{"description": "Item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addItemRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/v1/items/{id}": {
            "patch": {
                "description": "Only keys present in the body are written. category is a category name.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Partially update an item",
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true},
                    {"description": "Sparse fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.editItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.editResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.editResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Delete an item",
                "parameters": [{"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.deleteResponse"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.messageResponse": {"type": "object", "properties": {"message": {"type": "string"}, "id": {"type": "integer"}}},
        "handler.deleteResponse": {"type": "object", "properties": {"deleted": {"type": "boolean"}}},
        "handler.editResponse": {"type": "object", "properties": {"message": {"type": "string"}, "rowsAffected": {"type": "integer"}}},
        "handler.tableResultResponse": {"type": "object", "properties": {"table": {"type": "string"}, "rowsAffected": {"type": "integer"}, "failed": {"type": "boolean"}}},
        "handler.compositeResponse": {"type": "object", "properties": {"message": {"type": "string"}, "results": {"type": "array", "items": {"$ref": "#/definitions/handler.tableResultResponse"}}}},
        "handler.registerCustomerRequest": {
            "type": "object",
            "required": ["name", "email", "password", "age", "gender"],
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
                "age": {"type": "integer"}, "gender": {"type": "integer", "enum": [0, 1]},
                "hasPremiumMembership": {"type": "boolean"}, "shippingAddress": {"type": "string"}
            }
        },
        "handler.registerEmployeeRequest": {
            "type": "object",
            "required": ["name", "email", "password", "age", "gender", "department"],
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
                "age": {"type": "integer"}, "gender": {"type": "integer", "enum": [0, 1]},
                "salary": {"type": "number"}, "department": {"type": "integer", "enum": [1, 2, 3, 4, 5, 6]}
            }
        },
        "handler.updateCustomerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "age": {"type": "integer"},
                "gender": {"type": "integer"}, "shippingAddress": {"type": "string"},
                "hasPremiumMembership": {"type": "boolean"}, "password": {"type": "string"}
            }
        },
        "handler.updateEmployeeRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "age": {"type": "integer"},
                "gender": {"type": "integer"}, "salary": {"type": "number"},
                "department": {"type": "integer"}, "password": {"type": "string"}
            }
        },
        "handler.categoryRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "handler.addItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "price": {"type": "number"}, "description": {"type": "string"},
                "quantity": {"type": "integer"}, "isAvailable": {"type": "boolean"}, "category": {"type": "string"}
            }
        },
        "handler.editItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "price": {"type": "number"}, "description": {"type": "string"},
                "quantity": {"type": "integer"}, "isAvailable": {"type": "boolean"}, "category": {"type": "string"}
            }
        },
        "handler.personResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"},
                "joinDate": {"type": "string"}, "age": {"type": "integer"}, "gender": {"type": "string"}
            }
        },
        "handler.customerResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"},
                "joinDate": {"type": "string"}, "age": {"type": "integer"}, "gender": {"type": "string"},
                "shippingAddress": {"type": "string"}, "hasPremiumMembership": {"type": "boolean"}
            }
        },
        "handler.employeeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"},
                "joinDate": {"type": "string"}, "age": {"type": "integer"}, "gender": {"type": "string"},
                "salary": {"type": "number"}, "department": {"type": "string"}
            }
        },
        "handler.categoryResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "handler.itemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "number"},
                "description": {"type": "string"}, "shortDescription": {"type": "string"},
                "quantity": {"type": "integer"}, "isAvailable": {"type": "boolean"},
                "category": {"$ref": "#/definitions/handler.categoryResponse"}
            }
        },
        "handler.dependencyStatus": {"type": "object", "properties": {"status": {"type": "string"}, "error": {"type": "string"}}},
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}}
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
	Title:            "People & Catalog API",
	Description:      "Registration, partial updates and bounded reads over people, customers, employees, categories and items.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
