// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Identity fields (username, email)
// are immutable after registration.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Username        string           // Unique display handle, usable as a login identifier.
	Email           string           // The user's primary contact email, also usable as a login identifier.
	MerchantProfile *MerchantProfile // Nil unless this account has opened a merchant profile.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// IsMerchant reports whether this account has a merchant profile attached.
func (u *User) IsMerchant() bool {
	return u.MerchantProfile != nil
}

// MerchantProfile holds the seller-facing profile of a user. At most one
// profile exists per user; it is created lazily on the first profile upsert
// and updated in place afterwards.
type MerchantProfile struct {
	UserID      uuid.UUID // Foreign Key that links this profile to a core User entity.
	StoreName   string    // The merchant's public store name.
	Description string    // Free-text description of the store.
	ContactInfo string    // Free-text contact information shown to buyers.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}
