// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire site.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and token lifetimes for the admin API.
  - Export: CV download naming and response messages.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "hojadevida"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// It is sized for the PDF export, which is the slowest public route.
	DefaultWriteTimeout = 150 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for page and API requests.
	GlobalRequestTimeout = 30 * time.Second

	// ExportRequestTimeout is the deadline for a complete CV export (render, convert, merge).
	ExportRequestTimeout = 2 * time.Minute

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// ExportRateLimitRPS throttles PDF generation, which starts a browser tab per call.
	ExportRateLimitRPS = 0.5

	// ExportRateLimitBurst allows a few quick retries before throttling.
	ExportRateLimitBurst = 3

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "hojadevida"

	// AdminAccessTokenTTL is how long an admin session token stays valid.
	AdminAccessTokenTTL = 8 * time.Hour

	// AdminUserID is the fixed subject of the single administrator account.
	AdminUserID = "admin"
)

// # Export

const (
	// CVFilename is the download name of the generated résumé.
	CVFilename = "Hoja_de_Vida.pdf"

	// CVRenderFailedMessage is the plain-text body returned when PDF conversion fails.
	CVRenderFailedMessage = "Hubo un error al generar el PDF."

	// HideParamPrefix prefixes every export opt-out query parameter.
	HideParamPrefix = "ocultar_"
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "Content-Type"
	HeaderDisposition    = "Content-Disposition"
	ContentTypeJSON      = "application/json; charset=utf-8"
	ContentTypeHTML      = "text/html; charset=utf-8"
	ContentTypePlainText = "text/plain; charset=utf-8"
	ContentTypePDF       = "application/pdf"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaCV = "cv"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixRevokedToken = "admin:revoked_token:"
)
