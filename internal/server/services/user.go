// Package services contains server-side business logic. This file implements
// UserService: registration, credential verification and session token
// issuance, plus the first-boot admin seed.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tabsense/internal/common"
	"github.com/dmitrijs2005/tabsense/internal/dbx"
	"github.com/dmitrijs2005/tabsense/internal/server/auth"
	"github.com/dmitrijs2005/tabsense/internal/server/config"
	"github.com/dmitrijs2005/tabsense/internal/server/models"
	"github.com/dmitrijs2005/tabsense/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Test seams.
var (
	newID = uuid.NewString
	nowFn = time.Now
)

// AuthResult bundles the authenticated user with a freshly minted token.
type AuthResult struct {
	User  *models.User
	Token string
}

// UserService provides authentication-related operations:
// - Register: create users (unique username) and log them in
// - Login: verify credentials and mint a token
// - GetByID: resolve the user behind a validated token
// - EnsureAdmin: seed the admin account at first boot
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username and password and
// returns the user logged in. The username match is a case-sensitive exact
// match; a taken name yields common.ErrorAlreadyExists. The existence check
// and the insert run in one transaction, backed by the unique username index.
func (s *UserService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	var created *models.User

	txErr := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByLogin(ctx, username); err == nil {
			return common.ErrorAlreadyExists
		} else if !errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInternal
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return common.ErrorInternal
		}

		user := &models.User{ID: newID(), UserName: username, PasswordHash: hash}
		u, err := repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		created = u
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.issueToken(created)
}

// Login verifies the provided password against the stored hash and, on
// success, returns the user and a new token. Unknown usernames and wrong
// passwords both yield common.ErrorInvalidCredentials so the two cases are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issueToken(user)
}

// GetByID returns the user bound to a previously validated token subject.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// EnsureAdmin seeds the admin account if it does not exist yet. Exactly one
// admin record exists after first boot; subsequent boots are no-ops.
func (s *UserService) EnsureAdmin(ctx context.Context, password string) error {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByLogin(ctx, common.AdminUserName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{ID: newID(), UserName: common.AdminUserName, PasswordHash: hash, IsAdmin: true}
	if _, err := repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("error seeding admin user: %w", err)
	}
	return nil
}

func (s *UserService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{User: user, Token: token}, nil
}
