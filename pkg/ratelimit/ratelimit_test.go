package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewLimiter(3, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
}

func TestLimiter_IPsAreIndependent(t *testing.T) {
	rl := NewLimiter(1, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))

	// Başka IP etkilenmez
	assert.True(t, rl.Allow("2.2.2.2"))
}

func TestLimiter_ResetClearsCounter(t *testing.T) {
	rl := NewLimiter(1, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	rl.Reset("1.2.3.4")
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestLimiter_WindowExpiry(t *testing.T) {
	rl := NewLimiter(1, 20*time.Millisecond)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestLimiter_RetryAfterSeconds(t *testing.T) {
	rl := NewLimiter(1, time.Minute)
	defer rl.Close()

	assert.Equal(t, 0, rl.RetryAfterSeconds("unknown"))

	rl.Allow("1.2.3.4")
	retry := rl.RetryAfterSeconds("1.2.3.4")
	assert.Greater(t, retry, 0)
	assert.LessOrEqual(t, retry, 61)
}

func TestFormatRetryMessage(t *testing.T) {
	assert.Equal(t, "45 second(s)", FormatRetryMessage(45))
	assert.Equal(t, "2 minute(s)", FormatRetryMessage(120))
	assert.Equal(t, "1 minute(s)", FormatRetryMessage(90))
}

func TestExtractIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:54321"
	assert.Equal(t, "10.0.0.1", ExtractIP(r))

	r.Header.Set("X-Real-IP", "3.3.3.3")
	assert.Equal(t, "3.3.3.3", ExtractIP(r))

	// X-Forwarded-For her şeyi ezer; ilk IP client'tır
	r.Header.Set("X-Forwarded-For", "5.5.5.5, 6.6.6.6")
	assert.Equal(t, "5.5.5.5", ExtractIP(r))
}
