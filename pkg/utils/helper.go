package utils

import (
	"strconv"
)

// ParseInt converts string to int, falling back to defaultValue when the
// value is empty, not a number, or below 1.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
