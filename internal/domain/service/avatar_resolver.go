package service

// AvatarResolver derives an avatar image URL from an email address.
// The derivation is pure: the same email always yields the same URL.
type AvatarResolver interface {
	Resolve(email string) string
}
