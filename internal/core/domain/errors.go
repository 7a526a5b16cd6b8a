package domain

import "errors"

var (
	// ErrUnauthenticated means the request carried no credential, or one the
	// identity provider could not verify.
	ErrUnauthenticated = errors.New("missing or invalid credential")
	// ErrForbidden means the credential was valid but the caller is not an admin.
	ErrForbidden = errors.New("admin access required")

	// ErrInvalidInput marks malformed or out-of-range input detected past the
	// schema layer. Wrap it with the field-level detail.
	ErrInvalidInput = errors.New("invalid input")

	// The sentinel texts below are user-visible API messages, hence the
	// sentence casing.
	ErrContainerNotFound    = errors.New("Container not found")
	ErrContainerCodeExists  = errors.New("Container code already exists")
	ErrContainerHasProducts = errors.New("Cannot delete container with associated products")
	ErrInvalidContainer     = errors.New("Invalid container ID")

	ErrProductNotFound = errors.New("Product not found")
	ErrSKUExists       = errors.New("SKU already exists")

	ErrEmailExists        = errors.New("Email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNameGenerationExhausted is fatal: the bulk flow could not find a free
	// display name within its attempt budget.
	ErrNameGenerationExhausted = errors.New("unable to generate unique product name after multiple attempts")

	// ErrDuplicateImport means the Idempotency-Key of a bulk import was
	// already consumed by an earlier request.
	ErrDuplicateImport = errors.New("import already processed")
)
