// Package gravatar derives avatar URLs from email addresses following the
// Gravatar convention: an MD5 digest of the normalized address plus query
// parameters for size, audience rating and fallback image.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"devnet/config"
	"devnet/internal/domain/service"
)

const baseURL = "https://www.gravatar.com/avatar/"

// resolver is a concrete implementation of the AvatarResolver interface.
type resolver struct {
	size   int
	rating string
	def    string
}

// NewResolver is the constructor for resolver.
// It returns the implementation as a service.AvatarResolver interface.
func NewResolver(cfg *config.Config) service.AvatarResolver {
	r := &resolver{size: 200, rating: "pg", def: "mm"}
	if cfg != nil && cfg.Avatar != nil {
		if cfg.Avatar.Size > 0 {
			r.size = cfg.Avatar.Size
		}
		if cfg.Avatar.Rating != "" {
			r.rating = cfg.Avatar.Rating
		}
		if cfg.Avatar.Default != "" {
			r.def = cfg.Avatar.Default
		}
	}

	return r
}

// Resolve returns the avatar URL for an email address. The derivation is
// pure: no network access, same email in, same URL out. Gravatar requires
// the address trimmed and lowercased before hashing.
func (r *resolver) Resolve(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	digest := md5.Sum([]byte(normalized))

	params := url.Values{}
	params.Set("s", strconv.Itoa(r.size))
	params.Set("r", r.rating)
	params.Set("d", r.def)

	return baseURL + hex.EncodeToString(digest[:]) + "?" + params.Encode()
}
