package models

import (
	"fmt"
	"strings"
	"time"
)

// InquiryStatus, başvurunun takip durumudur.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusBooked    InquiryStatus = "booked"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Valid, durumun tanınan bir değer olup olmadığını döner.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusResponded, InquiryStatusBooked, InquiryStatusClosed:
		return true
	}
	return false
}

// Inquiry, iletişim formundan gelen bir başvuruyu temsil eder.
// Public endpoint'ten oluşturulur, admin panelde takip edilir.
type Inquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	EventType string        `json:"event_type"`
	EventDate *string       `json:"event_date"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// CreateInquiryRequest, public formdan gelen veri — Status alınmaz,
// her yeni başvuru "new" başlar.
type CreateInquiryRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	EventType string  `json:"event_type"`
	EventDate *string `json:"event_date"`
	Message   string  `json:"message"`
}

func (r *CreateInquiryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.EventType = strings.TrimSpace(r.EventType)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if r.EventType == "" {
		return fmt.Errorf("event type is required")
	}
	return nil
}

// UpdateInquiryRequest, admin tarafından durum güncellemesi.
type UpdateInquiryRequest struct {
	Status *InquiryStatus `json:"status"`
}

func (r *UpdateInquiryRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("status must be one of new, responded, booked, closed")
	}
	return nil
}
