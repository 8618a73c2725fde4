// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
)

// TokenSubject is the "sub" claim of every session token. There is a single
// admin account.
const TokenSubject = "user"

// authService is the concrete implementation of AuthService.
// It checks the configured admin password and issues session JWTs.
type authService struct {
	// adminPassword is the only accepted login password.
	adminPassword string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// It also keys the password comparison.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminPassword: cfg.AdminPassword,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login checks password against the configured admin password.
//
// Returns:
//   - ErrInvalidDataProvided if password is empty.
//   - ErrWrongPassword if it does not match.
func (a *authService) Login(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		log.Error().Msg("empty password provided")
		return ErrInvalidDataProvided
	}

	if !utils.EqualHMAC(password, a.adminPassword, a.tokenSignKey) {
		log.Warn().Msg("wrong password")
		return ErrWrongPassword
	}

	return nil
}

// CreateToken issues a signed session JWT.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, TokenSubject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
