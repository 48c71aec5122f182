package models

import "math"

// Page describes a pagination request after validation.
type Page struct {
	Page  int
	Limit int
}

// Offset is the number of records skipped before this page. It saturates
// at math.MaxInt instead of overflowing, which yields an empty page.
func (p Page) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Pagination is returned alongside every list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// NewPagination computes TotalPages as ceil(totalItems/limit).
func NewPagination(p Page, totalItems int) Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (totalItems + p.Limit - 1) / p.Limit
	}
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// ListFilter narrows a blog or project listing.
type ListFilter struct {
	// Featured, when non-nil, keeps only records with a matching flag.
	Featured *bool
}
