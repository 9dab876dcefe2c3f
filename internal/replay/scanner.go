package replay

import (
	"encoding/json"
	"strings"
)

// Scanner walks a capture's filtered first line and yields each top-level
// JSON object it finds, left to right. The sequence is finite and
// non-restartable; running out of objects is the normal end condition.
type Scanner struct {
	text string
	pos  int
}

func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next decoded object, or false once none remain. A brace
// that does not begin valid JSON (a stray '{' inside non-JSON framing, or a
// structurally incomplete fragment) never stops the scan: the search resumes
// one character later, so the position strictly increases every iteration and
// the scan always terminates.
func (s *Scanner) Next() (any, bool) {
	for {
		i := strings.IndexByte(s.text[s.pos:], '{')
		if i < 0 {
			s.pos = len(s.text)
			return nil, false
		}
		start := s.pos + i

		dec := json.NewDecoder(strings.NewReader(s.text[start:]))
		var v any
		if err := dec.Decode(&v); err != nil {
			s.pos = start + 1
			continue
		}
		// InputOffset is the position just past the decoded value, so the
		// next search resumes immediately after the closing brace.
		s.pos = start + int(dec.InputOffset())
		return v, true
	}
}

// Pos reports the offset the next call to Next will resume scanning from.
func (s *Scanner) Pos() int {
	return s.pos
}

// All drains the scanner into a slice.
func (s *Scanner) All() []any {
	var objects []any
	for {
		v, ok := s.Next()
		if !ok {
			return objects
		}
		objects = append(objects, v)
	}
}
