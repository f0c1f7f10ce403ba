package pycalc

import (
	"errors"
	"math"
	"testing"
)

func TestScanner(t *testing.T) {
	s := newScanner("ab c")
	if r := s.prev(); r != eof {
		t.Errorf("prev at start: want eof, got %q", r)
	}
	if r := s.peek(); r != 'a' {
		t.Errorf("peek: want 'a', got %q", r)
	}
	if r := s.read(); r != 'a' {
		t.Errorf("read: want 'a', got %q", r)
	}
	if r := s.prev(); r != 'a' {
		t.Errorf("prev: want 'a', got %q", r)
	}
	s.unread()
	s.unread()
	if s.pos != 0 {
		t.Errorf("unread went below start: pos %d", s.pos)
	}
	s.readUntil("ab")
	if r := s.peek(); r != ' ' {
		t.Errorf("readUntil stopped before %q, want ' '", r)
	}
	if v := s.extract(); v != "ab" {
		t.Errorf("extract: want %q, got %q", "ab", v)
	}
	s.readUntil(" ")
	s.ignore()
	s.readUntil("abc")
	if r := s.read(); r != eof {
		t.Errorf("read at end: want eof, got %q", r)
	}
	if s.pos != 4 {
		t.Errorf("read at end moved to %d", s.pos)
	}
	if v := s.extract(); v != "c" {
		t.Errorf("extract after ignore: want %q, got %q", "c", v)
	}
	if v := s.extract(); v != "" {
		t.Errorf("second extract: want empty, got %q", v)
	}
}

func TestLex(t *testing.T) {
	num := func(text string, n Number, pos int) lexToken {
		return lexToken{text: text, kind: tokenNum, num: n, pos: pos}
	}
	op := func(text string, pos int) lexToken {
		return lexToken{text: text, kind: tokenOp, pos: pos}
	}
	cases := []struct {
		src    string
		tokens []lexToken
		err    string
	}{
		// spaces
		{"", nil, ""},
		{" \t \t", nil, ""},
		// numbers
		{"0", []lexToken{num("0", Int(0), 1)}, ""},
		{"9876543210", []lexToken{num("9876543210", Int(9876543210), 1)}, ""},
		{"007", []lexToken{num("007", Int(7), 1)}, ""},
		{"1 0", []lexToken{num("1", Int(1), 1), num("0", Int(0), 3)}, ""},
		{"1.0", []lexToken{num("1.0", Float(1), 1)}, ""},
		{"1.", []lexToken{num("1.", Float(1), 1)}, ""},
		{"1e1", []lexToken{num("1e1", Float(10), 1)}, ""},
		{"1E1", []lexToken{num("1E1", Float(10), 1)}, ""},
		{"1e+1", []lexToken{num("1e+1", Float(10), 1)}, ""},
		{"1e-3", []lexToken{num("1e-3", Float(0.001), 1)}, ""},
		{"2.5E+10", []lexToken{num("2.5E+10", Float(2.5e10), 1)}, ""},
		{"1e3-2", []lexToken{num("1e3", Float(1000), 1), op("-", 4), num("2", Int(2), 5)}, ""},
		{"99999999999999999999", []lexToken{num("99999999999999999999", Float(1e20), 1)}, ""},
		{"1e999", []lexToken{num("1e999", Float(math.Inf(1)), 1)}, ""},
		{"1e", nil, "1e"},
		{"1e+", nil, "1e+"},
		{"1.1.1", nil, "1.1.1"},
		{"1ee1", nil, "1ee1"},
		{".1", nil, "."},
		{"-1", []lexToken{op("-", 1), num("1", Int(1), 2)}, ""},
		// operators
		{"1+0", []lexToken{num("1", Int(1), 1), op("+", 2), num("0", Int(0), 3)}, ""},
		{"1 * 0", []lexToken{num("1", Int(1), 1), op("*", 3), num("0", Int(0), 5)}, ""},
		{"--", []lexToken{op("-", 1), op("-", 2)}, ""},
		{"/", []lexToken{op("/", 1)}, ""},
		{"0 || 2", []lexToken{num("0", Int(0), 1), op("||", 3), num("2", Int(2), 6)}, ""},
		{"1&&2", []lexToken{num("1", Int(1), 1), op("&&", 2), num("2", Int(2), 4)}, ""},
		{"&", nil, "&"},
		{"1 | 2", nil, "| "},
		{"&|", nil, "&|"},
		{"&&&", nil, "&"},
		// brackets
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, num("1", Int(1), 2), {text: ")", kind: tokenClose, pos: 3}}, ""},
		{")(", []lexToken{{text: ")", kind: tokenClose, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}}, ""},
		// erroneous symbols
		{"abc", nil, "a"},
		{"$", nil, "$"},
		{"1 $", nil, "$"},
		{"1\n", nil, "\n"},
		{"[1]", nil, "["},
		{"π", nil, "π"},
	}

	for _, c := range cases {
		got, err := lex(c.src)
		if c.err != "" {
			var te *TokenError
			if !errors.As(err, &te) {
				t.Errorf("lexing %q: want TokenError for %q, got %v", c.src, c.err, err)
				continue
			}
			if te.Text != c.err {
				t.Errorf("lexing %q: want error on %q, got %q", c.src, c.err, te.Text)
			}
			continue
		}
		if err != nil {
			t.Errorf("lexing %q: unexpected error %v", c.src, err)
			continue
		}
		if len(got) != len(c.tokens) {
			t.Errorf("lexing %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("lexing %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"abc", 1},
		{"1 + x", 5},
		{"  1.2.3", 3},
		{"(1 & 2)", 4},
		{"αβ", 1},
		{"1 + β", 5},
	}
	for _, c := range cases {
		_, err := lex(c.src)
		var ie InputError
		if !errors.As(err, &ie) {
			t.Errorf("lexing %q: want an InputError, got %v", c.src, err)
			continue
		}
		if ie.Pos() != c.pos {
			t.Errorf("lexing %q: want error at %d, got %d", c.src, c.pos, ie.Pos())
		}
	}
}
