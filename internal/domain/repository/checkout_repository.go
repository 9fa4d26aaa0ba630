// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gemmarket/internal/domain/entity"
)

// ErrIntentNotFound is returned when no checkout intent exists for a gateway session id.
var ErrIntentNotFound = errors.New("checkout intent not found")

// CheckoutIntentRepository persists the ephemeral checkout snapshots keyed by
// gateway session id.
type CheckoutIntentRepository interface {
	// FindBySessionID retrieves the intent exchanged for the given gateway session.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.CheckoutIntent, error)

	// Create persists a new pending intent.
	Create(ctx context.Context, intent *entity.CheckoutIntent) error

	// UpdateStatus transitions an intent to a new status.
	UpdateStatus(ctx context.Context, sessionID string, status entity.IntentStatus) error

	// SupersedePending marks every pending intent of the identity as
	// superseded. Called before recording a fresh checkout attempt.
	SupersedePending(ctx context.Context, identity entity.Identity) error
}
