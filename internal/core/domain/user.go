package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is the profile record keyed by the identity-provider account id. Role
// gates every mutating operation in the system.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	CreatedBy string    `json:"created_by" bson:"created_by"`
}

// Account is an identity-provider credential record. It is distinct from the
// User profile: the account authenticates, the profile authorises.
type Account struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
