package numberutils

import (
	"strconv"
)

// ToInt64WithDefault converts the given string to an int64.
// If the string cannot be converted, it returns the provided default value.
func ToInt64WithDefault(s string, defaultVal int64) int64 {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return defaultVal
}

// IsInt64Positive checks if the given int64 is positive.
// It returns true if the number is greater than zero.
func IsInt64Positive(number int64) bool {
	return number > 0
}
