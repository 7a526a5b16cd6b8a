package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// AccountRepository persists identity-provider credential records.
type AccountRepository interface {
	Insert(ctx context.Context, a *domain.Account) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// List returns up to pageSize accounts. Callers must treat the result as
	// a single bounded page, not the full account set.
	List(ctx context.Context, pageSize int64) ([]domain.Account, error)
}

// IdentityProvider is the identity collaborator: it issues and verifies
// bearer tokens and owns credential records.
type IdentityProvider interface {
	// Authenticate checks email/password and returns a signed bearer token.
	Authenticate(ctx context.Context, email, password string) (string, error)
	// VerifyToken validates a bearer token and returns the caller's uid.
	// An empty or undecodable token yields domain.ErrUnauthenticated.
	VerifyToken(token string) (string, error)
	// CreateAccount registers a new credential record and returns its uid.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// ListAccounts returns a bounded page of accounts (best effort, pageSize
	// capped at 1000).
	ListAccounts(ctx context.Context, pageSize int64) ([]domain.Account, error)
}
