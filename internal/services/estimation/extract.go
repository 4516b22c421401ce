package estimation

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject locates the first top-level balanced-brace span in text
// that parses as a JSON object. Models sometimes wrap their answer in prose
// or Markdown code fences; brace scanning skips both. Returns ErrNoJSON when
// no such span exists.
func ExtractJSONObject(text string) (Result, error) {
	start := 0
	for {
		idx := strings.Index(text[start:], "{")
		if idx < 0 {
			break
		}

		open := start + idx
		end, ok := balancedSpan(text, open)
		if ok {
			var result Result
			if err := json.Unmarshal([]byte(text[open:end]), &result); err == nil {
				return result, nil
			}
		}

		start = open + 1
	}

	return nil, ErrNoJSON
}

// balancedSpan returns the index just past the brace matching the one at
// open, tracking JSON string literals so braces inside strings don't count.
func balancedSpan(s string, open int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}

	return 0, false
}
