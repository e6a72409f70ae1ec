// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// DefaultPageSize is the number of items rendered on a single page of any
// listing.
const DefaultPageSize = 10

// maxOffset is the largest OFFSET the supported databases accept.
const maxOffset uint64 = math.MaxInt64

// Page addresses a window of a stable-ordered listing.
// Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// NewPage returns the page with the given 1-based number and the default
// page size. Numbers below 1 are treated as the first page.
func NewPage(number int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Number: number, Size: DefaultPageSize}
}

// Limit returns the maximum number of rows the page holds.
func (p Page) Limit() uint64 {
	if p.Size < 1 {
		return DefaultPageSize
	}
	return uint64(p.Size)
}

// Offset returns the number of rows preceding the page. It saturates at
// [math.MaxInt64], so pages far past the end are empty instead of wrapping
// around to the start of the listing.
func (p Page) Offset() uint64 {
	if p.Number < 1 {
		return 0
	}

	skipped, limit := uint64(p.Number-1), p.Limit()
	if skipped > maxOffset/limit {
		return maxOffset
	}
	return skipped * limit
}

// Paginated is one page of a listing together with the metadata needed to
// navigate the rest of it.
type Paginated[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// NewPaginated assembles a [Paginated] result for page p out of total rows.
func NewPaginated[T any](items []T, p Page, total int64) Paginated[T] {
	if items == nil {
		items = []T{}
	}

	perPage := int(p.Limit())
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	current := p.Number
	if current < 1 {
		current = 1
	}

	return Paginated[T]{
		Items:       items,
		CurrentPage: current,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
