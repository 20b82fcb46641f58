package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AnalyticsEvent, bir ziyaretçi olayını temsil eder.
// Data serbest JSON'dur — ne geldiyse o saklanır (json.RawMessage
// parse etmeden passthrough sağlar).
type AnalyticsEvent struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Page      string          `json:"page"`
	Data      json.RawMessage `json:"data,omitempty"`
	UserAgent *string         `json:"user_agent"`
	IPAddress *string         `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}

// TrackEventRequest, public track endpoint'inden gelen veri.
// UserAgent ve IP istekten alınır, body'den değil.
type TrackEventRequest struct {
	EventType string          `json:"event_type"`
	Page      string          `json:"page"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func (r *TrackEventRequest) Validate() error {
	r.EventType = strings.TrimSpace(r.EventType)
	r.Page = strings.TrimSpace(r.Page)
	if r.EventType == "" {
		return fmt.Errorf("event_type is required")
	}
	if r.Page == "" {
		return fmt.Errorf("page is required")
	}
	return nil
}

// PageCount, bir sayfanın görüntülenme sayısı.
type PageCount struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

// AnalyticsStats, admin dashboard'daki özet istatistikler.
type AnalyticsStats struct {
	TotalPageViews   int              `json:"total_page_views"`
	TotalInquiries   int              `json:"total_inquiries"`
	TotalBlogPosts   int              `json:"total_blog_posts"`
	TotalPortfolio   int              `json:"total_portfolio"`
	TopPages         []PageCount      `json:"top_pages"`
	RecentViews      []AnalyticsEvent `json:"recent_views"`
	InquiriesByState map[string]int   `json:"inquiries_by_status"`
}
