package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"devnet/internal/domain/entity"
)

// Claims defines the payload embedded in issued bearer tokens.
type Claims struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	jwt.RegisteredClaims
}

// UserID extracts the account identifier carried in the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs the user's claims into a time-bounded token.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
