package pycalc

import "strconv"

// TokenError indicates input that the lexer cannot classify: an unknown
// character, a lone & or |, or a malformed number. It implements InputError.
type TokenError struct {
	// Text is the offending character, character pair, or number literal.
	Text string
	// Col is the position of the start of Text.
	Col int
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unknown token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Bracket is "(" for an open bracket that is never closed or ")" for a
	// close bracket with no open bracket.
	Bracket string
}

func (err *BracketError) Error() string {
	if err.Bracket == "(" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket "+err.Bracket+" with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// MalformedError is an error indicating an operator without enough operands,
// or an empty expression. It implements InputError.
type MalformedError struct {
	// Col is the position of the operator, or 1 for an empty expression.
	Col int
	// Op is the operator missing an operand. It is the empty string if the
	// expression has no terms at all.
	Op string
}

func (err *MalformedError) Error() string {
	if err.Op == "" {
		return errpos(err.Col, "no expression")
	}
	op := err.Op
	if op == "neg" {
		op = "-"
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(op))
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating a division by zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X Number
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero: "+err.X.String()+" / 0")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*MalformedError)(nil)
	_ InputError = (*DivisionError)(nil)
)
