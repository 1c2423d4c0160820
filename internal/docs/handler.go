// Package docs serves the OpenAPI document for the API. The document is
// assembled in code so it cannot drift from the binary that serves it.
package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/docs", getOpenApiDocument)
}

func getOpenApiDocument(c *gin.Context) {
	c.JSON(http.StatusOK, openApiDocument())
}

func openApiDocument() gin.H {
	credentialsBody := gin.H{
		"required": true,
		"content": gin.H{
			"application/json": gin.H{
				"schema": gin.H{
					"type":     "object",
					"required": []string{"email", "password"},
					"properties": gin.H{
						"email":    gin.H{"type": "string"},
						"password": gin.H{"type": "string", "minLength": 6},
					},
				},
			},
		},
	}

	walletBody := gin.H{
		"required": true,
		"content": gin.H{
			"application/json": gin.H{
				"schema": gin.H{
					"type":     "object",
					"required": []string{"chain", "address"},
					"properties": gin.H{
						"tag":     gin.H{"type": "string"},
						"chain":   gin.H{"type": "string"},
						"address": gin.H{"type": "string"},
					},
				},
			},
		},
	}

	walletIdParam := []gin.H{{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   gin.H{"type": "string", "format": "uuid"},
	}}

	walletRef := gin.H{"$ref": "#/components/schemas/Wallet"}

	return gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":   "ShieldPay API",
			"version": "1.0.0",
		},
		"components": gin.H{
			"securitySchemes": gin.H{
				"bearerAuth": gin.H{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
			"schemas": gin.H{
				"User": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":    gin.H{"type": "string", "format": "uuid"},
						"email": gin.H{"type": "string"},
					},
				},
				"Wallet": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":      gin.H{"type": "string", "format": "uuid"},
						"user_id": gin.H{"type": "string", "format": "uuid"},
						"tag":     gin.H{"type": "string"},
						"chain":   gin.H{"type": "string"},
						"address": gin.H{"type": "string"},
					},
				},
				"Auth": gin.H{
					"type": "object",
					"properties": gin.H{
						"token": gin.H{"type": "string"},
					},
				},
			},
		},
		"security": []gin.H{{"bearerAuth": []string{}}},
		"paths": gin.H{
			"/users": gin.H{
				"post": gin.H{
					"summary":     "Register a new user",
					"requestBody": credentialsBody,
					"responses": gin.H{
						"201": jsonResponse("User created", gin.H{"$ref": "#/components/schemas/User"}),
						"400": gin.H{"description": "Invalid input"},
					},
				},
			},
			"/signin": gin.H{
				"post": gin.H{
					"summary":     "Sign in",
					"requestBody": credentialsBody,
					"responses": gin.H{
						"200": jsonResponse("JWT token", gin.H{"$ref": "#/components/schemas/Auth"}),
						"401": gin.H{"description": "Invalid credentials"},
					},
				},
			},
			"/signout": gin.H{
				"post": gin.H{
					"summary": "Sign out (stateless, the token stays valid until expiry)",
					"responses": gin.H{
						"200": gin.H{"description": "Signed out"},
					},
				},
			},
			"/wallets": gin.H{
				"get": gin.H{
					"summary": "Get all wallets for the authenticated user",
					"responses": gin.H{
						"200": jsonResponse("List of wallets", gin.H{"type": "array", "items": walletRef}),
						"401": gin.H{"description": "Unauthorized"},
					},
				},
				"post": gin.H{
					"summary":     "Create a new wallet",
					"requestBody": walletBody,
					"responses": gin.H{
						"201": jsonResponse("Wallet created", walletRef),
						"400": gin.H{"description": "Invalid input"},
						"401": gin.H{"description": "Unauthorized"},
					},
				},
			},
			"/wallets/{id}": gin.H{
				"get": gin.H{
					"summary":    "Get wallet by id",
					"parameters": walletIdParam,
					"responses": gin.H{
						"200": jsonResponse("Wallet details", walletRef),
						"404": gin.H{"description": "Wallet not found"},
						"401": gin.H{"description": "Unauthorized"},
					},
				},
				"put": gin.H{
					"summary":     "Update wallet by id",
					"parameters":  walletIdParam,
					"requestBody": walletBody,
					"responses": gin.H{
						"200": jsonResponse("Wallet updated", walletRef),
						"400": gin.H{"description": "Invalid input"},
						"404": gin.H{"description": "Wallet not found"},
						"401": gin.H{"description": "Unauthorized"},
					},
				},
				"delete": gin.H{
					"summary":    "Delete wallet by id",
					"parameters": walletIdParam,
					"responses": gin.H{
						"200": gin.H{"description": "Wallet deleted"},
						"404": gin.H{"description": "Wallet not found"},
						"401": gin.H{"description": "Unauthorized"},
					},
				},
			},
		},
	}
}

func jsonResponse(description string, schema gin.H) gin.H {
	return gin.H{
		"description": description,
		"content": gin.H{
			"application/json": gin.H{"schema": schema},
		},
	}
}
