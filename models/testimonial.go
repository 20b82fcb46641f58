package models

import (
	"fmt"
	"strings"
)

// Testimonial, bir müşteri yorumunu temsil eder.
type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Event     string `json:"event"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Image     string `json:"image"`
	Location  string `json:"location"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

type CreateTestimonialRequest struct {
	Name      string `json:"name"`
	Event     string `json:"event"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Image     string `json:"image"`
	Location  string `json:"location"`
	SortOrder int    `json:"sort_order"`
}

func (r *CreateTestimonialRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("name and text are required")
	}
	if r.Rating == 0 {
		r.Rating = 5
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

type UpdateTestimonialRequest struct {
	Name      *string `json:"name"`
	Event     *string `json:"event"`
	Rating    *int    `json:"rating"`
	Text      *string `json:"text"`
	Image     *string `json:"image"`
	Location  *string `json:"location"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}
