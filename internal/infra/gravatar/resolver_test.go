package gravatar

import (
	"testing"

	"devnet/config"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Deterministic(t *testing.T) {
	r := NewResolver(nil)

	first := r.Resolve("a@x.com")
	second := r.Resolve("a@x.com")
	assert.Equal(t, first, second)

	// Different emails yield different URLs.
	assert.NotEqual(t, first, r.Resolve("b@x.com"))
}

func TestResolver_NormalizesEmail(t *testing.T) {
	r := NewResolver(nil)

	// Gravatar hashes the trimmed, lowercased address.
	assert.Equal(t, r.Resolve("a@x.com"), r.Resolve("  A@X.COM  "))
}

func TestResolver_KnownDigest(t *testing.T) {
	r := NewResolver(nil)

	// md5("a@x.com") = 743173788aa9166801df2e18f0e7ff24
	got := r.Resolve("a@x.com")
	assert.Equal(t, "https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?d=mm&r=pg&s=200", got)
}

func TestResolver_DefaultParameters(t *testing.T) {
	r := NewResolver(&config.Config{})

	got := r.Resolve("a@x.com")
	assert.Contains(t, got, "s=200")
	assert.Contains(t, got, "r=pg")
	assert.Contains(t, got, "d=mm")
}

func TestResolver_ConfiguredParameters(t *testing.T) {
	cfg := &config.Config{Avatar: &config.AvatarConfig{Size: 64, Rating: "g", Default: "identicon"}}
	r := NewResolver(cfg)

	got := r.Resolve("a@x.com")
	assert.Contains(t, got, "s=64")
	assert.Contains(t, got, "r=g")
	assert.Contains(t, got, "d=identicon")
}
