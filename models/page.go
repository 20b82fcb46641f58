package models

import (
	"fmt"
	"strings"
	"time"
)

// Page, serbest içerikli bir sayfayı temsil eder (hakkımızda, SSS ...).
type Page struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Content        string    `json:"content"`
	Template       string    `json:"template"`
	SEOTitle       *string   `json:"seo_title"`
	SEODescription *string   `json:"seo_description"`
	OGImage        *string   `json:"og_image"`
	IsPublished    bool      `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreatePageRequest struct {
	Title          string  `json:"title"`
	Slug           string  `json:"slug"`
	Content        string  `json:"content"`
	Template       string  `json:"template"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	OGImage        *string `json:"og_image"`
	IsPublished    bool    `json:"is_published"`
}

func (r *CreatePageRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !validSlug(r.Slug) {
		return fmt.Errorf("slug must contain only lowercase letters, numbers and dashes")
	}
	if r.Template == "" {
		r.Template = "default"
	}
	return nil
}

type UpdatePageRequest struct {
	Title          *string `json:"title"`
	Content        *string `json:"content"`
	Template       *string `json:"template"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	OGImage        *string `json:"og_image"`
	IsPublished    *bool   `json:"is_published"`
}
