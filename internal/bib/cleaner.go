package bib

import "strings"

// NotAvailable replaces missing or invalid field data.
const NotAvailable = "N/A"

func isExcluded(c byte) bool {
	switch c {
	case '/', '.', ',', '[', ']', ':', ' ':
		return true
	}
	return false
}

// Clean normalizes a raw payload value for presentation. Non-strings and nil
// become NotAvailable. For strings one trailing and then one leading
// punctuation character is dropped (single pass, not repeated) before
// surrounding whitespace is trimmed. Empty input is NotAvailable, and so is
// input that strips down to nothing ("[]", "  "), so a cleaned field is never
// blank.
func Clean(value any) string {
	switch v := value.(type) {
	case string:
		return cleanString(v)
	case *string:
		if v == nil {
			return NotAvailable
		}
		return cleanString(*v)
	default:
		return NotAvailable
	}
}

func cleanString(s string) string {
	if s == "" {
		return NotAvailable
	}
	if isExcluded(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	if s == "" {
		return NotAvailable
	}
	if isExcluded(s[0]) {
		s = s[1:]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}
	return s
}
