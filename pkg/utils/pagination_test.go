package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}

func TestCalculateOffset_HugePageSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, CalculateOffset(922337203685477590, 100))
	assert.Equal(t, math.MaxInt, CalculateOffset(math.MaxInt, 2))
	assert.Equal(t, math.MaxInt-1, CalculateOffset(math.MaxInt, 1))
	assert.Equal(t, (math.MaxInt/100)*100, CalculateOffset(math.MaxInt/100+1, 100))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-4", 10))
}
