package utils

import (
	"strconv"
	"strings"
)

// ToInt parses s as a non-negative int, returning def when s is blank or invalid.
func ToInt(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return def
	}
	return i
}

// ToBool reports whether s spells a true value ("1", "true", "yes", "on").
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// DisplayStandard renders an optional cppStandard for humans.
func DisplayStandard(s *string) string {
	if s == nil {
		return "(undefined)"
	}
	if *s == "" {
		return `""`
	}
	return *s
}
