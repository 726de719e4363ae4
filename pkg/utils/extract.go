package utils

import "strings"

// ExtractJSONObject locates the first top-level brace-delimited substring in a
// model completion and returns it. Markdown fences and any prose around the
// object are discarded. Returns "" when no complete object exists.
func ExtractJSONObject(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}

	end := findMatchingBrace(response, start)
	if end == -1 {
		return ""
	}

	return response[start : end+1]
}

// findMatchingBrace walks the string tracking depth, string literals and escape
// sequences so braces inside JSON strings don't terminate the scan early.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
