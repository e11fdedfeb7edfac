// Package services contains the server-side business logic: the login
// orchestration, the two pagination strategies and the record mutations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"noteboard/internal/common"
	"noteboard/internal/server/auth"
	"noteboard/internal/server/config"
	"noteboard/internal/server/models"
	"noteboard/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back to the transport layer:
// a signed access token plus the authenticated account for the response body.
type LoginResult struct {
	AccessToken string
	Account     *models.Account
}

// AuthService orchestrates credential lookup, password verification and
// token issuance into a single login transaction. It holds no per-request
// state; the secret and validity window are fixed at construction.
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login verifies the (email, password) pair and mints an access token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials,
// with no observable difference, so callers cannot enumerate accounts.
// Validation happens before any store access.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingParams
	}

	repo := s.repomanager.Accounts(s.db)

	cred, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		// ErrIntegrity and wrapped driver errors pass through; the
		// transport boundary logs them and answers with a generic message
		return nil, err
	}

	candidate := auth.DeriveVerifier([]byte(password), cred.Salt)
	if !auth.CheckVerifier(cred.SaltedHash, candidate) {
		return nil, common.ErrInvalidCredentials
	}

	account := cred.Account
	token, err := auth.GenerateToken(displayName(&account), account.Role, account.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, Account: &account}, nil
}

func displayName(a *models.Account) string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
