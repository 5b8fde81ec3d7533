package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Scanner provides rune-wise access to a textual input.
// Current always holds the rune under the cursor, or 0 at the
// end of the input.
type Scanner interface {
	Next() rune
	Peek() rune
	ConsumeRune(r rune) error
	ConsumeString(s string) bool
	SkipBlanks() rune
	Current() rune
	Position() int
	AtEnd() bool

	Errorf(msg string, args ...interface{}) error
}

type scanner struct {
	in      []byte
	offset  int
	pos     int
	no      int
	current rune
}

func NewScanner(in string) Scanner {
	s := &scanner{
		in: []byte(in),
	}
	s.Next()
	return s
}

func (s *scanner) Next() rune {
	if s.offset >= len(s.in) {
		s.current = 0
		s.pos = len(s.in)
		s.offset = len(s.in) + 1
		return 0
	}
	r, size := utf8.DecodeRune(s.in[s.offset:])
	s.current = r
	s.pos = s.offset
	s.offset += size
	s.no++
	return r
}

// Peek returns the rune following the current one without consuming it.
func (s *scanner) Peek() rune {
	if s.offset >= len(s.in) {
		return 0
	}
	r, _ := utf8.DecodeRune(s.in[s.offset:])
	return r
}

func (s *scanner) ConsumeRune(r rune) error {
	if s.Current() != r {
		return s.Errorf("%q expected", string(r))
	}
	s.Next()
	return nil
}

// ConsumeString consumes the given string if the input continues with it.
func (s *scanner) ConsumeString(str string) bool {
	if s.AtEnd() {
		return str == ""
	}
	if len(s.in)-s.pos < len(str) || string(s.in[s.pos:s.pos+len(str)]) != str {
		return false
	}
	end := s.pos + len(str)
	for s.pos < end {
		s.Next()
	}
	return true
}

func (s *scanner) Current() rune {
	return s.current
}

func (s *scanner) Position() int {
	return s.no
}

func (s *scanner) AtEnd() bool {
	return s.offset > len(s.in)
}

func (s *scanner) SkipBlanks() rune {
	n := s.Current()
	for unicode.IsSpace(n) {
		n = s.Next()
	}
	return n
}

func (s *scanner) Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", s.context(), fmt.Sprintf(msg, args...))
}

func (s *scanner) context() string {
	if len(s.in) <= 40 {
		return fmt.Sprintf("%q %d", string(s.in), s.Position())
	}
	start := s.offset - 20
	if start < 0 {
		start = 0
	}
	end := start + 40
	if end > len(s.in) {
		end = len(s.in)
	}
	return fmt.Sprintf("...%q... %d", string(s.in[start:end]), s.Position())
}
