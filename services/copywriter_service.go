package services

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/dspstudio/backend/pkg/genai"
)

// systemPrompt, tüm üretimlerde sağlayıcıya verilen rol tanımı.
const systemPrompt = "You are a professional content writer for a photography and videography business. Create engaging, professional content."

// Result, bir metin üretiminin sonucudur. Sağlayıcı hataları caller'a
// error olarak değil bu zarfla döner — panel hatayı kullanıcıya gösterir,
// HTTP katmanı 200 döner.
type Result struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Provider string `json:"provider,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CopywriterService, AI destekli metin üretimi. Groq birincil
// sağlayıcıdır; başarısız olursa Gemini'ye düşülür.
type CopywriterService interface {
	// UpdateKeys, sağlayıcı zincirini yeni anahtarlarla yeniden kurar.
	// Boş anahtar o sağlayıcıyı zincirden çıkarır.
	UpdateKeys(groqKey, geminiKey string)

	GenerateCaption(ctx context.Context, imageDescription, style string) *Result
	GenerateAdCopy(ctx context.Context, service, targetAudience, tone string) *Result
	EnhanceContent(ctx context.Context, content, enhancementType string) *Result
	GenerateSEO(ctx context.Context, pageTitle, pageContent string) *Result
}

// providerChain, o anki sağlayıcı listesi. Anahtar güncellemesi yeni bir
// chain kurup atomik olarak takas eder — devam eden üretimler eski
// chain'le biter, kilit gerekmez.
type providerChain struct {
	providers []genai.Provider
}

// copywriterService, CopywriterService'in implementasyonu.
type copywriterService struct {
	chain   atomic.Pointer[providerChain]
	timeout time.Duration
}

// NewCopywriterService, constructor. Anahtarlar genelde settings'ten
// gelir; başlangıçta env'den de verilebilir.
func NewCopywriterService(groqKey, geminiKey string, timeout time.Duration) CopywriterService {
	s := &copywriterService{timeout: timeout}
	s.UpdateKeys(groqKey, geminiKey)
	return s
}

func (s *copywriterService) UpdateKeys(groqKey, geminiKey string) {
	chain := &providerChain{}
	if groqKey != "" {
		chain.providers = append(chain.providers, genai.NewGroq(groqKey))
	}
	if geminiKey != "" {
		chain.providers = append(chain.providers, genai.NewGemini(geminiKey))
	}
	s.chain.Store(chain)
	log.Printf("[copywriter] provider chain rebuilt: %d provider(s)", len(chain.providers))
}

// generate, zincirdeki sağlayıcıları sırayla dener. Her deneme kendi
// timeout'unu alır — birincinin yavaşlığı ikincinin süresini yemez.
func (s *copywriterService) generate(ctx context.Context, userPrompt string) *Result {
	chain := s.chain.Load()
	if chain == nil || len(chain.providers) == 0 {
		return &Result{Success: false, Error: "no AI providers configured"}
	}

	for _, p := range chain.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		text, err := p.Generate(attemptCtx, systemPrompt, userPrompt)
		cancel()
		if err != nil {
			log.Printf("[copywriter] %s generation failed: %v", p.Name(), err)
			continue
		}
		return &Result{Success: true, Text: text, Provider: p.Name()}
	}

	return &Result{Success: false, Error: "all AI providers failed"}
}

func (s *copywriterService) GenerateCaption(ctx context.Context, imageDescription, style string) *Result {
	if style == "" {
		style = "professional"
	}
	prompt := fmt.Sprintf(`Generate a compelling social media caption for a photography post.

Image Description: %s
Style: %s

Requirements:
- Engaging and professional
- Include relevant photography hashtags
- Keep it concise (2-3 sentences)
- Capture the emotion and essence of the moment

Generate the caption:`, imageDescription, style)
	return s.generate(ctx, prompt)
}

func (s *copywriterService) GenerateAdCopy(ctx context.Context, service, targetAudience, tone string) *Result {
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(`Create compelling ad copy for a photography service.

Service: %s
Target Audience: %s
Tone: %s

Requirements:
- Attention-grabbing headline
- Clear value proposition
- Call-to-action
- Keep it concise and persuasive

Generate the ad copy with sections for headline, body, and CTA:`, service, targetAudience, tone)
	return s.generate(ctx, prompt)
}

func (s *copywriterService) EnhanceContent(ctx context.Context, content, enhancementType string) *Result {
	var prompt string
	switch enhancementType {
	case "expand":
		prompt = "Expand this content with more details and engaging information:\n\n" + content
	case "rewrite":
		prompt = "Rewrite this content in a more professional and engaging way:\n\n" + content
	case "summarize":
		prompt = "Create a concise summary of this content:\n\n" + content
	default: // improve
		prompt = "Improve this content while maintaining its core message:\n\n" + content
	}
	return s.generate(ctx, prompt)
}

func (s *copywriterService) GenerateSEO(ctx context.Context, pageTitle, pageContent string) *Result {
	prompt := fmt.Sprintf(`Generate SEO metadata for a photography website page.

Page Title: %s
Page Content: %s

Generate:
1. SEO Title (60 characters max)
2. Meta Description (155 characters max)
3. Keywords (10 relevant keywords, comma-separated)

Format the response clearly with these three sections.`, pageTitle, pageContent)
	return s.generate(ctx, prompt)
}
