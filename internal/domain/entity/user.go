// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record. An email maps to exactly one User;
// the credential store enforces that with a unique index.
type User struct {
	ID           uuid.UUID // Assigned by the repository when the record is created; immutable afterwards.
	Name         string    // Display name, free text.
	Email        string    // Unique login identifier, also the input for avatar derivation.
	PasswordHash string    // bcrypt output; the plaintext password is never stored.
	AvatarURL    string    // Derived once from the email at registration, not recomputed on login.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
