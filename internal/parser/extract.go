package parser

import "fmt"

// ExtractJSON returns the first balanced top-level JSON object in s.
// Model responses are expected to be bare JSON but are tolerated when
// wrapped in prose or markdown fences. Braces inside string literals
// do not count toward the balance.
func ExtractJSON(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("no balanced JSON object found")
}
