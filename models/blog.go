package models

import (
	"fmt"
	"strings"
	"time"
)

// BlogPost, bir blog yazısını temsil eder.
// Slug benzersizdir ve public URL'de kullanılır.
type BlogPost struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Content        string     `json:"content"`
	Excerpt        string     `json:"excerpt"`
	FeaturedImage  string     `json:"featured_image"`
	Category       string     `json:"category"`
	Tags           []string   `json:"tags"`
	SEOTitle       *string    `json:"seo_title"`
	SEODescription *string    `json:"seo_description"`
	OGImage        *string    `json:"og_image"`
	IsPublished    bool       `json:"is_published"`
	PublishedAt    *time.Time `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateBlogPostRequest struct {
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Content        string     `json:"content"`
	Excerpt        string     `json:"excerpt"`
	FeaturedImage  string     `json:"featured_image"`
	Category       string     `json:"category"`
	Tags           []string   `json:"tags"`
	SEOTitle       *string    `json:"seo_title"`
	SEODescription *string    `json:"seo_description"`
	OGImage        *string    `json:"og_image"`
	IsPublished    bool       `json:"is_published"`
	PublishedAt    *time.Time `json:"published_at"`
}

func (r *CreateBlogPostRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !validSlug(r.Slug) {
		return fmt.Errorf("slug must contain only lowercase letters, numbers and dashes")
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return nil
}

type UpdateBlogPostRequest struct {
	Title          *string    `json:"title"`
	Content        *string    `json:"content"`
	Excerpt        *string    `json:"excerpt"`
	FeaturedImage  *string    `json:"featured_image"`
	Category       *string    `json:"category"`
	Tags           *[]string  `json:"tags"`
	SEOTitle       *string    `json:"seo_title"`
	SEODescription *string    `json:"seo_description"`
	OGImage        *string    `json:"og_image"`
	IsPublished    *bool      `json:"is_published"`
	PublishedAt    *time.Time `json:"published_at"`
}

// validSlug, slug'ın URL-güvenli olup olmadığını kontrol eder:
// küçük harf, rakam ve tire; baş/son tire olamaz, boş olamaz.
func validSlug(s string) bool {
	if s == "" || strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	for _, ch := range s {
		if (ch < 'a' || ch > 'z') && (ch < '0' || ch > '9') && ch != '-' {
			return false
		}
	}
	return true
}
