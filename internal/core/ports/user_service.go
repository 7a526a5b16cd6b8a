package ports

import "context"

// CreateUserInput carries the fields for creating a staff/admin account.
type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

// UserService defines the user registrar use case. Authorization (admin gate)
// happens in the transport layer through the same middleware as every other
// mutating operation.
type UserService interface {
	// Create registers an identity account plus its profile and returns the
	// new uid.
	Create(ctx context.Context, input CreateUserInput, callerUID string) (string, error)
}
