// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider types for authentication records.
const (
	ProviderTypeEmail = "email"
)

// Authentication represents a single method of logging in (a credential).
// The password hash is treated as an opaque capability by every layer above
// the hasher; only the PasswordHasher service can produce or verify it.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, e.g., "email".
	ProviderUserID string    // The user's identifier at the provider; the email address for "email".
	PasswordHash   string    // Stores the bcrypt-hashed password, only used when the Provider is "email".
	CreatedAt      time.Time // Timestamp of when this authentication method was linked to the user account.
}
