// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/ctxutil"
	"github.com/taibuivan/hojadevida/internal/platform/respond"
	"github.com/taibuivan/hojadevida/internal/platform/sec"
)

// TokenVerifier checks the signature and expiry of an admin token.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// RevocationChecker reports whether a token ID was revoked by a logout.
type RevocationChecker interface {
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// RequireAdmin extracts and verifies the bearer token of an admin request.
//
// # Flow
//  1. Require an 'Authorization: Bearer <token>' header.
//  2. Verify the JWT via [TokenVerifier].
//  3. Reject tokens whose ID is on the revocation list.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
func RequireAdmin(verifier TokenVerifier, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// 1. Format validation
			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// 2. Token verification
			claims, err := verifier.VerifyToken(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// 3. Revocation
			revoked, err := revocations.IsRevoked(request.Context(), claims.ID)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}
			if revoked {
				respond.Error(writer, request, apperr.Unauthorized("Token has been revoked"))
				return
			}

			// 4. Context injection
			ctx := ctxutil.WithAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
