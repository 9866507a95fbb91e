package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Cognitive Flux API Documentation",
        "title": "Cognitive Flux API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "User Login",
                "description": "Login with username and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Login credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {
                                    "type": "string",
                                    "example": "admin"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "password"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    }
                }
            }
        },
        "/api/v1/auth/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Create Account",
                "description": "Register a new reader account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "user",
                        "description": "Signup data",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {
                                    "type": "string",
                                    "example": "jane"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "password123"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account created"
                    },
                    "409": {
                        "description": "Username already taken"
                    }
                }
            }
        },
        "/api/v1/articles": {
            "get": {
                "tags": ["Articles"],
                "summary": "List Articles",
                "description": "List articles with optional search, category filter and sort order",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "search",
                        "type": "string",
                        "description": "Case-insensitive match against title, excerpt and content"
                    },
                    {
                        "in": "query",
                        "name": "category",
                        "type": "string",
                        "description": "Exact category, or 'all' for no filter"
                    },
                    {
                        "in": "query",
                        "name": "sort",
                        "type": "string",
                        "description": "dateDesc, dateAsc, titleAsc or titleDesc"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Article list"
                    }
                }
            }
        },
        "/api/v1/articles/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Get Article",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Article"
                    },
                    "404": {
                        "description": "Article not found"
                    }
                }
            }
        },
        "/api/v1/admin/articles": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create Article",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Article created"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/api/v1/admin/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export Library",
                "description": "Download the full article collection as JSON",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "JSON backup file"
                    }
                }
            }
        },
        "/api/v1/admin/import": {
            "post": {
                "tags": ["Admin"],
                "summary": "Import Articles",
                "description": "Merge a JSON backup or markdown document into the collection",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Import summary"
                    },
                    "400": {
                        "description": "Malformed payload"
                    }
                }
            }
        },
        "/api/v1/admin/draft": {
            "get": {
                "tags": ["Admin"],
                "summary": "Restore Draft",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Stored draft"
                    },
                    "404": {
                        "description": "No draft stored"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Cognitive Flux API",
	Description:      "Cognitive Flux API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
