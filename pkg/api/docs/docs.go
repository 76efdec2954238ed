// Package docs holds the Swagger 2.0 document served under /swagger/.
//
// The document is maintained by hand in the swag template format rather than produced by
// swag init: the relayed routes share one generic handler, so their per-route path and
// query parameters come from the route table in pkg/relay, which swag annotations cannot
// express. Keep the relayed paths in sync with relay.Routes(); the api package tests check it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/goran-ethernal/SolanaRelay"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "https://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Fixed status message, independent of upstream health and API key configuration",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Service status",
                "responses": {
                    "200": {
                        "description": "Relay is running",
                        "schema": {
                            "$ref": "#/definitions/api.StatusResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Relay liveness and whether an upstream API key is configured",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Relay health status",
                        "schema": {
                            "$ref": "#/definitions/api.HealthResponse"
                        }
                    }
                }
            }
        },
        "/test-api-key": {
            "get": {
                "description": "Fetches wrapped SOL metadata from the gateway and reports the outcome",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Check the upstream API key",
                "responses": {
                    "200": {
                        "description": "API key accepted",
                        "schema": {
                            "$ref": "#/definitions/api.APIKeyCheckResponse"
                        }
                    },
                    "401": {
                        "description": "API key rejected",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "API key missing or upstream unavailable",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/token-info/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Token metadata",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/wallet-spl-tokens/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "SPL tokens held by a wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/wallet-sol-balance/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Native SOL balance of a wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/wallet-portfolio/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Wallet portfolio",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/token-swaps/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Swaps of a token",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "maximum": 100,
                        "minimum": 1,
                        "description": "Maximum number of items to return",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pagination cursor returned by a previous call",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/wallet-swaps/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Swaps made by a wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "maximum": 100,
                        "minimum": 1,
                        "description": "Maximum number of items to return",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pagination cursor returned by a previous call",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pair-swaps/{network}/{pair_address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Swaps on a pair",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "pair_address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "maximum": 100,
                        "minimum": 1,
                        "description": "Maximum number of items to return",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pagination cursor returned by a previous call",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/token-price/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Token price",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/token-pairs/{network}/{address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Trading pairs of a token",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "maximum": 100,
                        "minimum": 1,
                        "description": "Maximum number of items to return",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pagination cursor returned by a previous call",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pair-ohlcv/{network}/{pair_address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "OHLCV candles of a pair",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "pair_address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "enum": [
                            "1m",
                            "5m",
                            "15m",
                            "1h",
                            "4h",
                            "1d"
                        ],
                        "type": "string",
                        "default": "1h",
                        "description": "Candle timeframe",
                        "name": "timeframe",
                        "in": "query"
                    },
                    {
                        "maximum": 30,
                        "minimum": 1,
                        "type": "integer",
                        "default": 7,
                        "description": "Window length in days ending now",
                        "name": "days_ago",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "maximum": 100,
                        "minimum": 1,
                        "description": "Maximum number of items to return",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pagination cursor returned by a previous call",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pair-snipers/{network}/{pair_address}": {
            "get": {
                "description": "Validates network and address, forwards the request and returns the upstream JSON unchanged",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Relay"
                ],
                "summary": "Snipers of a pair",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Network: mainnet or solana",
                        "name": "network",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Address; a trailing \"pump\" is stripped",
                        "name": "pair_address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "maximum": 10000,
                        "minimum": 10,
                        "type": "integer",
                        "default": 1000,
                        "description": "Blocks after pair creation to scan",
                        "name": "blocks_after_creation",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Upstream JSON body",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid network, address or query parameter",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Upstream rejected the API key",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Upstream has no such resource",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Upstream unavailable or relay misconfigured",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIKeyCheckResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "api_key_configured": {
                    "type": "boolean"
                },
                "routes": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "api.StatusResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
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
	Schemes:          []string{"http", "https"},
	Title:            "SolanaRelay API",
	Description:      "Relay for the Moralis Solana gateway: token, wallet and pair data returned verbatim",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
