// Package ws, admin panelin canlı güncelleme akışını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Server → client iletilen mesaj formatı
//
// Event akışı:
// 1. Bir editör içerik kaydeder → HTTP PUT → Service → DB kayıt
// 2. Service, Hub'ın BroadcastToAll metodunu çağırır
// 3. Hub, event'i tüm bağlı admin client'larına iletir
// 4. Paneldeki diğer sekmeler listeyi tazeler — sayfa yenilemeye gerek kalmaz
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op (operation): Event türü — "content_update", "heartbeat" vb.
// Data: Event'e özgü payload.
// Seq: Her outbound event'e verilen artan sayı. Frontend eksik event
// tespit etmek için seq'i takip eder (5'ten sonra 7 gelirse 6 kayıp).
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client periyodik gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpHeartbeatAck = "heartbeat_ack" // Heartbeat'e yanıt

	// OpContentUpdate, herhangi bir içerik kaynağında değişiklik olduğunu
	// bildirir. Data: {"resource": "...", "action": "...", "id": "..."}.
	// Panel ilgili listeyi yeniden çeker.
	OpContentUpdate = "content_update"

	// OpActivity, yeni bir işlem günlüğü kaydını taşır.
	// Data: models.ActivityEntry.
	OpActivity = "activity"

	// OpInquiryNew, yeni bir iletişim formu başvurusunu duyurur.
	OpInquiryNew = "inquiry_new"
)

// ContentUpdateData, OpContentUpdate event'inin payload'ı.
type ContentUpdateData struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       string `json:"id,omitempty"`
}
