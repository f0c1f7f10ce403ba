package pycalc

import (
	"errors"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	// num is the value of a number token.
	num Number
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is an integer or real token.
	tokenNum
	// tokenOp is an operator, including the unary negation "neg" produced
	// by normalize.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

const (
	// Operators contains the runes which are single-rune operators.
	Operators = "+-*/"
	// Logical contains the runes which form logical operators when doubled.
	Logical = "&|"

	spaces = " \t"
	digits = "0123456789"
)

type lexer struct {
	src    *scanner
	tokens []lexToken
	err    error
}

// stateFn scans part of the input and returns the state to run next, or nil
// when lexing is finished.
type stateFn func(*lexer) stateFn

// lex splits an expression into tokens. Lexing stops at the first rune that
// can't begin or continue a token.
func lex(text string) ([]lexToken, error) {
	l := lexer{src: newScanner(text)}
	for state := scanSpace; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.tokens, nil
}

// emit appends the pending text as a token.
func (l *lexer) emit(kind tokenKind) {
	pos := l.src.col()
	l.tokens = append(l.tokens, lexToken{text: l.src.extract(), kind: kind, pos: pos})
}

// fail records an error for the pending text and halts the lexer.
func (l *lexer) fail() stateFn {
	pos := l.src.col()
	l.err = &TokenError{Text: l.src.extract(), Col: pos}
	return nil
}

func scanSpace(l *lexer) stateFn {
	l.src.readUntil(spaces)
	l.src.ignore()
	return scanAny
}

func scanAny(l *lexer) stateFn {
	r := l.src.read()
	switch {
	case r == eof:
		return nil
	case strings.ContainsRune(Operators, r):
		l.emit(tokenOp)
		return scanSpace
	case strings.ContainsRune(Logical, r):
		return scanLogical
	case strings.ContainsRune(digits, r):
		return scanNumber
	case r == '(':
		l.emit(tokenOpen)
		return scanSpace
	case r == ')':
		l.emit(tokenClose)
		return scanSpace
	default:
		return l.fail()
	}
}

// scanLogical scans the second rune of && or ||. The first is already read.
func scanLogical(l *lexer) stateFn {
	first := l.src.prev()
	if l.src.read() != first {
		// There are no single & or | operators, nor &| or |&.
		return l.fail()
	}
	l.emit(tokenOp)
	return scanSpace
}

func scanNumber(l *lexer) stateFn {
	l.src.readUntil(digits + ".eE")
	if p := l.src.prev(); p == 'e' || p == 'E' {
		if s := l.src.peek(); s == '+' || s == '-' {
			l.src.read()
			l.src.readUntil(digits)
		}
	}
	pos := l.src.col()
	text := l.src.extract()
	num, ok := parsenum(text)
	if !ok {
		l.err = &TokenError{Text: text, Col: pos}
		return nil
	}
	l.tokens = append(l.tokens, lexToken{text: text, kind: tokenNum, num: num, pos: pos})
	return scanSpace
}

// parsenum parses a number literal, as an integer if possible and otherwise
// as a float. Floats too large to represent become infinities.
func parsenum(text string) (Number, bool) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i), true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, false
	}
	return Float(f), true
}
