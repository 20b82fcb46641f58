package models

import (
	"fmt"
	"strings"
)

// Video, video galerisindeki bir kaydı temsil eder.
// VideoURL harici bir embed linkidir (YouTube/Vimeo), dosya tutulmaz.
type Video struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"video_url"`
	Thumbnail   string   `json:"thumbnail"`
	Category    string   `json:"category"`
	Duration    *string  `json:"duration"`
	Tags        []string `json:"tags"`
	SortOrder   int      `json:"sort_order"`
	IsActive    bool     `json:"is_active"`
}

type CreateVideoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"video_url"`
	Thumbnail   string   `json:"thumbnail"`
	Category    string   `json:"category"`
	Duration    *string  `json:"duration"`
	Tags        []string `json:"tags"`
	SortOrder   int      `json:"sort_order"`
}

func (r *CreateVideoRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || strings.TrimSpace(r.VideoURL) == "" {
		return fmt.Errorf("title and video_url are required")
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return nil
}

type UpdateVideoRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"video_url"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    *string   `json:"category"`
	Duration    *string   `json:"duration"`
	Tags        *[]string `json:"tags"`
	SortOrder   *int      `json:"sort_order"`
	IsActive    *bool     `json:"is_active"`
}
