package ws

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dspstudio/backend/models"
)

// SessionResolver, WebSocket handler'ın oturum doğrulaması için kullandığı
// interface.
//
// Neden services.AuthService yerine kendi interface'imizi tanımlıyoruz?
// Circular dependency'yi önlemek için:
// - services paketi ws.EventPublisher'ı kullanıyor (broadcast için)
// - ws paketi services.AuthService'i kullansaydı → ws → services → ws döngüsü
//
// Interface Segregation: handler'ın sadece ResolveSession'a ihtiyacı var.
// main.go'da authService bu interface'i implicit olarak karşılar.
type SessionResolver interface {
	ResolveSession(ctx context.Context, rawToken string) (*models.User, error)
}

// sessionCookieName, admin oturum cookie'sinin adı.
// handlers paketindeki sabitle aynı olmalıdır.
const sessionCookieName = "admin_session"

// Handler, WebSocket bağlantı isteklerini işleyen HTTP handler'ı.
type Handler struct {
	hub      *Hub
	resolver SessionResolver
	upgrader websocket.Upgrader
}

// NewHandler, yeni bir WebSocket handler oluşturur.
// allowedOrigins boşsa tüm origin'ler kabul edilir (development).
func NewHandler(hub *Hub, resolver SessionResolver, allowedOrigins []string) *Handler {
	return &Handler{
		hub:      hub,
		resolver: resolver,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
	}
}

// HandleConnection, HTTP bağlantısını WebSocket'e yükseltir ve client'ı
// Hub'a kaydeder.
//
// Kimlik doğrulama session cookie ile yapılır — tarayıcı WebSocket
// el sıkışmasında cookie'leri otomatik gönderir, ayrıca token taşımaya
// gerek yoktur.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.resolver.ResolveSession(r.Context(), cookie.Value)
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for user %s: %v", user.ID, err)
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		userID: user.ID,
		send:   make(chan []byte, sendBufferSize),
	}

	h.hub.register <- client

	// WritePump ayrı goroutine'de; ReadPump bu goroutine'de bloklar —
	// aksi halde handler hemen döner ve bağlantı kapanırdı.
	go client.WritePump()
	client.ReadPump()
}
