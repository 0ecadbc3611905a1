// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package admin authenticates the single site administrator.

There is no user table: the username and bcrypt hash come from configuration.
A successful login yields a short-lived RS256 access token; logout stores the
token ID in Redis until the token would have expired anyway.
*/
package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
	"github.com/taibuivan/hojadevida/internal/platform/constants"
	"github.com/taibuivan/hojadevida/internal/platform/sec"
)

// TokenIssuer signs admin access tokens.
type TokenIssuer interface {
	GenerateAccessToken(subject, username string, timeToLive time.Duration) (string, *sec.AuthClaims, error)
}

// RevocationStore records logged-out tokens.
type RevocationStore interface {
	Revoke(context context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// Credentials identify the administrator.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Session is returned by a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

var errInvalidCredentials = apperr.Unauthorized("Invalid login credentials")

type Service struct {
	credentials Credentials
	tokens      TokenIssuer
	revocations RevocationStore
	logger      *slog.Logger
}

func NewService(credentials Credentials, tokens TokenIssuer, revocations RevocationStore, logger *slog.Logger) *Service {
	return &Service{
		credentials: credentials,
		tokens:      tokens,
		revocations: revocations,
		logger:      logger,
	}
}

// Login checks the credentials and issues an access token.
func (service *Service) Login(context context.Context, username, password string) (*Session, error) {
	// The hash is checked even for a wrong username so both failures take the same time.
	validPassword := sec.CheckPasswordHash(password, service.credentials.PasswordHash)
	validUsername := subtle.ConstantTimeCompare([]byte(username), []byte(service.credentials.Username)) == 1

	if !validPassword || !validUsername {
		service.logger.WarnContext(context, "admin_login_failed", slog.String("username", username))
		return nil, errInvalidCredentials
	}

	token, claims, err := service.tokens.GenerateAccessToken(constants.AdminUserID, service.credentials.Username, constants.AdminAccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("admin_token_generation_failed: %w", err))
	}

	service.logger.InfoContext(context, "admin_logged_in", slog.String("token_id", claims.ID))
	return &Session{AccessToken: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if err := service.revocations.Revoke(context, claims.ID, claims.Remaining()); err != nil {
		return apperr.Internal(err)
	}

	service.logger.InfoContext(context, "admin_logged_out", slog.String("token_id", claims.ID))
	return nil
}
