package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHexKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestDeriveKey(t *testing.T) {
	key, err := DeriveKey(testHexKey)
	assert.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestDeriveKey_Invalid(t *testing.T) {
	_, err := DeriveKey("not-hex")
	assert.Error(t, err)

	// Doğru hex ama yanlış uzunluk
	_, err = DeriveKey("abcd")
	assert.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key, err := DeriveKey(testHexKey)
	assert.NoError(t, err)

	plaintext := "gsk_very_secret_api_key"
	encrypted, err := Encrypt(plaintext, key)
	assert.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)
	assert.False(t, strings.Contains(encrypted, plaintext))

	decrypted, err := Decrypt(encrypted, key)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_NonceMakesCiphertextsDiffer(t *testing.T) {
	key, err := DeriveKey(testHexKey)
	assert.NoError(t, err)

	a, err := Encrypt("same input", key)
	assert.NoError(t, err)
	b, err := Encrypt("same input", key)
	assert.NoError(t, err)

	// Rastgele nonce sayesinde aynı plaintext bile farklı ciphertext üretir
	assert.NotEqual(t, a, b)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	key, err := DeriveKey(testHexKey)
	assert.NoError(t, err)

	otherKey, err := DeriveKey("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	assert.NoError(t, err)

	encrypted, err := Encrypt("secret", key)
	assert.NoError(t, err)

	_, err = Decrypt(encrypted, otherKey)
	assert.Error(t, err)
}

func TestDecrypt_TamperedCiphertextFails(t *testing.T) {
	key, err := DeriveKey(testHexKey)
	assert.NoError(t, err)

	_, err = Decrypt("bm90LXZhbGlkLWNpcGhlcnRleHQ", key)
	assert.Error(t, err)
}
