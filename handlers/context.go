package handlers

import (
	"context"

	"github.com/dspstudio/backend/models"
)

// contextKey, context.WithValue için özel tip.
// string yerine özel tip kullanılır — başka paketlerin key'leriyle çakışmaz.
type contextKey string

// UserContextKey, auth middleware'ının doğrulanmış kullanıcıyı
// context'e koyduğu anahtar.
const UserContextKey contextKey = "user"

// SessionCookieName, admin oturum cookie'sinin adı.
// Auth handler yazar, auth middleware ve WebSocket upgrade okur.
const SessionCookieName = "admin_session"

// UserFromContext, context'teki doğrulanmış kullanıcıyı döner.
// Auth middleware'ından geçmemiş bir istekte ok=false döner.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok
}
