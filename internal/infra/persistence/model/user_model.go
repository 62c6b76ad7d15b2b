// Package model contains the persistence representations of domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"devnet/internal/domain/entity"
)

// UserModel is the document stored in the users collection. The account ID
// doubles as the document key; email carries a unique index.
type UserModel struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	AvatarURL    string    `bson:"avatar_url"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// FromUserDomain maps a domain entity to its persistence document.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		AvatarURL:    user.AvatarURL,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// ToDomain maps a persistence document back to a pure domain entity.
func (m *UserModel) ToDomain() (*entity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed user id in store")
	}

	return &entity.User{
		ID:           id,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
