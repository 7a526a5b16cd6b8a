package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// ContainerRepository defines persistence operations for containers.
type ContainerRepository interface {
	// Insert persists a new container and returns its store-assigned id.
	Insert(ctx context.Context, c *domain.Container) (string, error)
	// Exists reports whether a container with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)
	// CodeExists reports whether any container already carries the code.
	CodeExists(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Container, error)
}
