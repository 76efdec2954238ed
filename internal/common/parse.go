package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseIntInRange parses a decimal integer and checks that it lies within [lo, hi].
func ParseIntInRange(val string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", val)
	}

	if n < lo || n > hi {
		return 0, fmt.Errorf("%d is out of range [%d, %d]", n, lo, hi)
	}

	return n, nil
}

// TruncateString cuts s to at most maxChars characters (runes, not bytes).
func TruncateString(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}

	return string([]rune(s)[:maxChars])
}

func ToLowerWithTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
