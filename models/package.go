package models

import (
	"fmt"
	"strings"
)

// Package, bir fiyat paketini temsil eder.
// Price bilinçli olarak string'dir — "₹45,000" gibi biçimli gösterilir,
// üzerinde aritmetik yapılmaz.
type Package struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Duration  string   `json:"duration"`
	Category  string   `json:"category"`
	Features  []string `json:"features"`
	Popular   bool     `json:"popular"`
	Color     string   `json:"color"`
	SortOrder int      `json:"sort_order"`
	IsActive  bool     `json:"is_active"`
}

type CreatePackageRequest struct {
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Duration  string   `json:"duration"`
	Category  string   `json:"category"`
	Features  []string `json:"features"`
	Popular   bool     `json:"popular"`
	Color     string   `json:"color"`
	SortOrder int      `json:"sort_order"`
}

func (r *CreatePackageRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || r.Price == "" {
		return fmt.Errorf("name and price are required")
	}
	if r.Features == nil {
		r.Features = []string{}
	}
	return nil
}

type UpdatePackageRequest struct {
	Name      *string   `json:"name"`
	Price     *string   `json:"price"`
	Duration  *string   `json:"duration"`
	Category  *string   `json:"category"`
	Features  *[]string `json:"features"`
	Popular   *bool     `json:"popular"`
	Color     *string   `json:"color"`
	SortOrder *int      `json:"sort_order"`
	IsActive  *bool     `json:"is_active"`
}
