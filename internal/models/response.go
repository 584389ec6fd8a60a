package models

import "math"

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination summarizes a paged listing
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

// Page identifies one page of a listing
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of records skipped before this page
func (p Page) Offset() int {
	if p.Number < 1 || p.Limit < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// Summary builds the pagination summary for total matching records
func (p Page) Summary(total int) *Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return &Pagination{
		Current: p.Number,
		Pages:   pages,
		Total:   total,
		Limit:   p.Limit,
	}
}
