package models

import (
	"fmt"
	"strings"
	"time"
)

// Offer, süreli bir kampanyayı temsil eder.
// Public listede sadece aktif VE tarih penceresi içindeki kampanyalar görünür.
type Offer struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	Terms           []string  `json:"terms"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Current, kampanyanın şu an geçerli olup olmadığını döner.
func (o *Offer) Current(now time.Time) bool {
	return o.IsActive && !now.Before(o.ValidFrom) && !now.After(o.ValidUntil)
}

type CreateOfferRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	Terms           []string  `json:"terms"`
}

func (r *CreateOfferRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.DiscountPercent < 0 || r.DiscountPercent > 100 {
		return fmt.Errorf("discount_percent must be between 0 and 100")
	}
	if !r.ValidUntil.After(r.ValidFrom) {
		return fmt.Errorf("valid_until must be after valid_from")
	}
	if r.Terms == nil {
		r.Terms = []string{}
	}
	return nil
}

type UpdateOfferRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	DiscountPercent *int       `json:"discount_percent"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
	Terms           *[]string  `json:"terms"`
	IsActive        *bool      `json:"is_active"`
}
