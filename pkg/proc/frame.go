package proc

import (
	"bytes"
)

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// frame determines the first complete response contained in data.
// A response is either a balanced parenthesized expression, optionally
// followed by a newline, or a newline terminated atom. It returns the
// offset of the first non-blank byte and the end of the response.
// The end is 0 if data does not yet contain a complete response.
func frame(data []byte) (start, end int) {
	for start < len(data) && isBlank(data[start]) {
		start++
	}
	if start == len(data) {
		return start, 0
	}

	if data[start] != '(' {
		i := bytes.IndexByte(data[start:], '\n')
		if i < 0 {
			return start, 0
		}
		return start, start + i + 1
	}

	depth := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				i++
				if i < len(data) && data[i] == '\n' {
					i++
				}
				return start, i
			}
		case '"':
			// "" is an escaped quote inside a string literal
			for {
				j := bytes.IndexByte(data[i+1:], '"')
				if j < 0 {
					return start, 0
				}
				i += j + 1
				if i+1 < len(data) && data[i+1] == '"' {
					i++
					continue
				}
				break
			}
		case '|':
			j := bytes.IndexByte(data[i+1:], '|')
			if j < 0 {
				return start, 0
			}
			i += j + 1
		case ';':
			j := bytes.IndexByte(data[i:], '\n')
			if j < 0 {
				return start, 0
			}
			i += j
		}
	}
	return start, 0
}
