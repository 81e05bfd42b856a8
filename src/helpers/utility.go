package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID returns a new random identifier for a stored entity
func GenerateUUID() string {
	return uuid.New().String()
}

// Helper function to properly remove quotes from strings
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ParseXMLBool converts BeerXML boolean text ("TRUE"/"FALSE", case
// insensitive) to a Go bool. The second return value is false if the text is
// neither.
func ParseXMLBool(s string) (bool, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return true, true
	case "FALSE":
		return false, true
	}
	return false, false
}

// FormatXMLBool renders a bool in the canonical BeerXML form
func FormatXMLBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
