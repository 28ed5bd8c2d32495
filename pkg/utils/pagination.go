package utils

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// CalculateTotalPages returns ceil(total / limit).
func CalculateTotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// CalculateOffset returns (page-1)*limit. Pages whose offset does not fit
// in an int saturate at math.MaxInt, which selects no rows.
func CalculateOffset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
