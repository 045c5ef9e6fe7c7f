package validate

import (
	"fmt"
	"unicode/utf8"
)

// Text field length limits, shared by the API handlers and /api/limits.
const (
	MaxCommentLength = 1000
	MaxVideoIDLength = 255
	MaxNameLength    = 200
	MaxEmailLength   = 320
)

// Limits are counted in characters, not bytes, so multi-byte comments are not
// rejected early.
func checkRunes(value string, max int, field string) string {
	if utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s must be %d characters or fewer", field, max)
	}
	return ""
}

func Comment(s string) string {
	if s == "" {
		return "comment is required"
	}
	return checkRunes(s, MaxCommentLength, "comment")
}

func VideoID(s string) string {
	if s == "" {
		return "video_id is required"
	}
	return checkRunes(s, MaxVideoIDLength, "video_id")
}

func Name(s string) string  { return checkRunes(s, MaxNameLength, "name") }
func Email(s string) string { return checkRunes(s, MaxEmailLength, "email") }

// FieldLimits returns a map of field names to max lengths for the /api/limits endpoint.
func FieldLimits() map[string]int {
	return map[string]int{
		"comment": MaxCommentLength,
		"videoId": MaxVideoIDLength,
		"name":    MaxNameLength,
		"email":   MaxEmailLength,
	}
}
