package models

import (
	"fmt"
	"strings"
)

// Service, sitede listelenen bir çekim hizmetini temsil eder
// (düğün, doğum, ticari çekim vb.).
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	SortOrder   int      `json:"sort_order"`
	IsActive    bool     `json:"is_active"`
}

type CreateServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	SortOrder   int      `json:"sort_order"`
}

func (r *CreateServiceRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Features == nil {
		r.Features = []string{}
	}
	return nil
}

type UpdateServiceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Image       *string   `json:"image"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	SortOrder   *int      `json:"sort_order"`
	IsActive    *bool     `json:"is_active"`
}
