// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent of
// domain or business logic.
package utils

import "strconv"

// ParseIntDefault converts a query-parameter string to an int. An empty
// string yields the provided default; anything non-numeric returns an error
// so the caller can reject the request rather than silently substituting.
//
// Example:
//
//	n, err := utils.ParseIntDefault("42", 0) // 42, nil
//	n, err = utils.ParseIntDefault("", 100)  // 100, nil
//	n, err = utils.ParseIntDefault("x", 0)   // 0, error
func ParseIntDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
