package model

import "math"

// PageRequest is a normalized page/limit pair, page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of records preceding the page. It saturates at
// math.MaxInt instead of overflowing, which still selects an empty page.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// UserPage is one page of profiles plus pagination metadata.
type UserPage struct {
	Users       []Profile
	TotalUsers  int64
	TotalPages  int64
	CurrentPage int
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
