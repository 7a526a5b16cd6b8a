package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// UserRepository persists user profiles keyed by identity-provider uid.
type UserRepository interface {
	// FindByID returns the profile for a uid, or domain.ErrAccountNotFound
	// when no profile document exists.
	FindByID(ctx context.Context, uid string) (*domain.User, error)
	// Set writes the profile document under its uid.
	Set(ctx context.Context, u *domain.User) error
}
