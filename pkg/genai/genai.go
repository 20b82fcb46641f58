// Package genai — harici text-generation sağlayıcı client'ları.
//
// İki sağlayıcı desteklenir: Groq (primary) ve Gemini (fallback).
// İkisi de tek endpoint'li JSON API'lerdir; SDK yerine net/http ile konuşulur.
//
// Provider interface'i service katmanını concrete sağlayıcılardan ayırır —
// testlerde fake provider kullanılır, sağlayıcı eklemek yeni bir
// implementasyon yazmaktan ibarettir.
package genai

import (
	"context"
	"net/http"
	"time"
)

// Provider, tek bir text-generation sağlayıcısını temsil eder.
type Provider interface {
	// Name, sağlayıcının kısa adı ("groq", "gemini") — sonuç zarfında ve
	// loglarda kullanılır.
	Name() string

	// Generate, verilen system + user prompt için metin üretir.
	// ctx'in deadline'ı sağlayıcı HTTP çağrısını sınırlar.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// httpClient, her iki sağlayıcının paylaştığı HTTP client.
// Timeout güvenlik ağıdır — asıl sınır caller'ın context deadline'ıdır.
var httpClient = &http.Client{Timeout: 60 * time.Second}
