package domain

import (
	"strconv"
	"strings"
)

// ParseCount parses a piece count. The accepted grammar is digits with
// optional comma thousands separators ("1,250"); signs, decimals, and
// anything else are rejected. Surrounding whitespace is ignored.
func ParseCount(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseWeight parses a weight value. The accepted grammar is digits with
// at most one decimal point ("12.5", "40"); signs and thousands
// separators are rejected. Surrounding whitespace is ignored.
func ParseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	dots := 0
	for _, r := range s {
		if r == '.' {
			dots++
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	if dots > 1 || len(s) == dots {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
