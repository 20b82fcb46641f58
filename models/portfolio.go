package models

import (
	"fmt"
	"strings"
)

// PortfolioItem, galeri sayfasındaki bir görseli temsil eder.
// Category serbest metindir (wedding, prewedding, maternity ...).
type PortfolioItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type CreatePortfolioRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (r *CreatePortfolioRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	if r.Title == "" || r.Category == "" || r.Image == "" {
		return fmt.Errorf("title, category and image are required")
	}
	return nil
}

type UpdatePortfolioRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}
