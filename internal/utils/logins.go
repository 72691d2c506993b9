package utils

import "strings"

// FoldLogin returns the case-insensitive identity of a GitHub login
func FoldLogin(login string) string {
	return strings.ToLower(login)
}
