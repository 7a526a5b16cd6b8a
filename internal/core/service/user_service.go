package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// UserService implements the user registrar: it creates an identity-provider
// account and the matching profile record.
type UserService struct {
	identity ports.IdentityProvider
	users    ports.UserRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewUserService(identity ports.IdentityProvider, users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{identity: identity, users: users, audit: audit, logger: logger}
}

// Create registers a staff or admin account. The email-uniqueness pre-check is
// best effort: it inspects a single bounded page of up to 1000 accounts; the
// unique index on the profile email is the backstop past that page.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput, callerUID string) (string, error) {
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleStaff {
		return "", fmt.Errorf("%w: role must be admin or staff", domain.ErrInvalidInput)
	}

	accounts, err := s.identity.ListAccounts(ctx, 1000)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, input.Email) {
			return "", domain.ErrEmailExists
		}
	}

	uid, err := s.identity.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create account")
		return "", err
	}

	now := time.Now().UTC()
	profile := &domain.User{
		ID:        uid,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: now,
		CreatedBy: callerUID,
	}
	if err := s.users.Set(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("uid", uid).Msg("failed to create user profile")
		return "", err
	}

	s.audit.Record(domain.AuditEntry{Kind: "user", EntityID: uid, Action: "created", ActorUID: callerUID, Timestamp: now})
	s.logger.Info().Str("uid", uid).Str("role", input.Role).Msg("user created")
	return uid, nil
}
