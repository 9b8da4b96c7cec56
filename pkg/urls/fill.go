package urls

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// fill substitutes params into the {name} and {name:regexp} segments of a
// chi pattern. Regular expressions may contain braces of their own.
func fill(pattern string, params []string) (string, error) {
	var b strings.Builder
	used := 0

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{':
			end, err := closingBrace(pattern, i)
			if err != nil {
				return "", err
			}
			if used >= len(params) {
				return "", fmt.Errorf("missing value for %s", pattern[i:end+1])
			}
			b.WriteString(url.PathEscape(params[used]))
			used++
			i = end
		case c == '*' && i == len(pattern)-1:
			if used < len(params) {
				b.WriteString(params[used])
				used++
			}
		default:
			b.WriteByte(c)
		}
	}

	if used != len(params) {
		return "", fmt.Errorf("got %d parameters, pattern takes %d", len(params), used)
	}
	return b.String(), nil
}

func closingBrace(pattern string, start int) (int, error) {
	depth := 0
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errors.New("unbalanced braces in pattern")
}
