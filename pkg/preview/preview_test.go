package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMintAndVerify(t *testing.T) {
	s := NewSigner("test-secret")

	tok, err := s.Mint(KindBlog, "post-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	assert.NoError(t, s.Verify(tok, KindBlog, "post-123"))
}

func TestMint_UnknownKind(t *testing.T) {
	s := NewSigner("test-secret")

	_, err := s.Mint("video", "v-1")
	assert.Error(t, err)
}

func TestVerify_ResourceMismatch(t *testing.T) {
	s := NewSigner("test-secret")

	tok, err := s.Mint(KindBlog, "post-123")
	assert.NoError(t, err)

	// Token başka bir kaynak için kullanılamaz
	assert.Error(t, s.Verify(tok, KindBlog, "post-456"))

	// Token başka bir türe de taşınamaz
	assert.Error(t, s.Verify(tok, KindPage, "post-123"))
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewSigner("secret-a").Mint(KindPage, "page-1")
	assert.NoError(t, err)

	assert.Error(t, NewSigner("secret-b").Verify(tok, KindPage, "page-1"))
}

func TestVerify_Garbage(t *testing.T) {
	s := NewSigner("test-secret")
	assert.Error(t, s.Verify("not-a-jwt", KindBlog, "x"))
	assert.Error(t, s.Verify("", KindBlog, "x"))
}
