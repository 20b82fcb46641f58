// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile gönderim detayları soyutlanır — service'ler
// concrete Resend implementasyonuna değil interface'e bağımlıdır.
// Email yapılandırılmamışsa service'lere nil geçilir ve gönderim sessizce atlanır.
package email

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
type EmailSender interface {
	// SendPasswordReset, kullanıcıya şifre sıfırlama linki içeren email gönderir.
	// token plaintext'tir ve sadece bu email'de görünür (DB'de digest saklanır).
	SendPasswordReset(ctx context.Context, toEmail, token string) error

	// SendInquiryNotification, siteden yeni bir müşteri talebi geldiğinde
	// stüdyo sahibine bildirim gönderir.
	SendInquiryNotification(ctx context.Context, name, fromEmail, eventType, message string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client     *resend.Client
	fromEmail  string // Gönderici adresi — Resend'de doğrulanmış domain altında olmalı
	adminEmail string // Inquiry bildirimlerinin gideceği adres
	appURL     string // Admin panelinin public URL'i — reset linklerinde kullanılır
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
func NewResendSender(apiKey, fromEmail, adminEmail, appURL string) EmailSender {
	return &resendSender{
		client:     resend.NewClient(apiKey),
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
		appURL:     appURL,
	}
}

// SendPasswordReset, şifre sıfırlama email'i gönderir.
// Link format: {appURL}/admin/reset-password?token={token}
func (s *resendSender) SendPasswordReset(ctx context.Context, toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/admin/reset-password?token=%s", s.appURL, token)

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#111;font-family:Georgia,serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#111;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#1c1c1c;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#f5f0e8;font-size:22px;margin:0 0 8px 0;">Studio Admin</h1>
              <h2 style="color:#f5f0e8;font-size:17px;margin:0 0 24px 0;">Password Reset Request</h2>
              <p style="color:#b8b0a3;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                We received a request to reset your admin password. Click the button below to choose a new one.
              </p>
              <table cellpadding="0" cellspacing="0" style="margin:0 0 24px 0;">
                <tr>
                  <td style="background-color:#c9a227;border-radius:6px;padding:12px 32px;">
                    <a href="%s" style="color:#111;text-decoration:none;font-size:15px;font-weight:600;">Reset Password</a>
                  </td>
                </tr>
              </table>
              <p style="color:#7a7265;font-size:13px;line-height:1.6;margin:0;">
                This link will expire in 1 hour. If you didn't request a reset, ignore this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, resetLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Studio Admin <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: "Reset Your Admin Password",
		Html:    body,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

// SendInquiryNotification, yeni müşteri talebi bildirimi gönderir.
// İçerik kullanıcı girdisi olduğu için HTML escape edilir.
func (s *resendSender) SendInquiryNotification(ctx context.Context, name, fromEmail, eventType, message string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Georgia,serif;background-color:#f5f0e8;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr>
      <td align="center">
        <table width="520" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
          <tr>
            <td>
              <h2 style="color:#1c1c1c;font-size:18px;margin:0 0 16px 0;">New inquiry from the website</h2>
              <p style="color:#444;font-size:15px;line-height:1.7;margin:0;">
                <strong>Name:</strong> %s<br>
                <strong>Email:</strong> %s<br>
                <strong>Event:</strong> %s<br>
                <strong>Message:</strong><br>%s
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		html.EscapeString(name),
		html.EscapeString(fromEmail),
		html.EscapeString(eventType),
		html.EscapeString(message),
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Studio Website <%s>", s.fromEmail),
		To:      []string{s.adminEmail},
		ReplyTo: fromEmail,
		Subject: fmt.Sprintf("New inquiry: %s (%s)", name, eventType),
		Html:    body,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send inquiry notification: %w", err)
	}

	return nil
}
