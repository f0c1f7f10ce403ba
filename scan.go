package pycalc

import "strings"

// eof is the rune returned by scanner methods when there is nothing to read.
const eof rune = -1

// scanner is a cursor over the runes of an expression. Text between start
// and pos is the token being scanned.
type scanner struct {
	src   []rune
	start int
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{src: []rune(text)}
}

// read returns the rune at the read point and advances past it.
func (s *scanner) read() rune {
	r := s.peek()
	if r != eof {
		s.pos++
	}
	return r
}

// unread moves the read point back by one rune, stopping at the beginning of
// the input.
func (s *scanner) unread() {
	if s.pos > 0 {
		s.pos--
	}
}

// peek returns the rune at the read point without consuming it.
func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	return s.src[s.pos]
}

// prev returns the rune just behind the read point.
func (s *scanner) prev() rune {
	if s.pos <= 0 {
		return eof
	}
	return s.src[s.pos-1]
}

// readUntil consumes runes as long as they are in valid.
func (s *scanner) readUntil(valid string) {
	for {
		r := s.read()
		if r == eof {
			return
		}
		if !strings.ContainsRune(valid, r) {
			s.unread()
			return
		}
	}
}

// ignore drops the pending token text.
func (s *scanner) ignore() {
	s.start = s.pos
}

// extract returns the pending token text and starts a new token.
func (s *scanner) extract() string {
	v := string(s.src[s.start:s.pos])
	s.start = s.pos
	return v
}

// col is the 1-based column of the pending token.
func (s *scanner) col() int {
	return s.start + 1
}
