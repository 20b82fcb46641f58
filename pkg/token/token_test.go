package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_UniqueAndNonEmpty(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := New()
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.False(t, seen[tok], "tokens must be unique")
		seen[tok] = true
	}
}

func TestHash_Deterministic(t *testing.T) {
	tok, err := New()
	assert.NoError(t, err)

	// Aynı input her zaman aynı digest'i vermeli — DB lookup buna dayanır
	assert.Equal(t, Hash(tok), Hash(tok))

	// SHA-256 hex: 64 karakter
	assert.Len(t, Hash(tok), 64)
}

func TestHash_DifferentInputsDiffer(t *testing.T) {
	assert.NotEqual(t, Hash("a"), Hash("b"))
}
