package pycalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is the result of an expression. It holds either an integer or a
// floating-point value. The zero Number is the integer 0.
type Number struct {
	i     int64
	f     float64
	float bool
}

// Int returns an integer Number.
func Int(x int64) Number {
	return Number{i: x}
}

// Float returns a floating-point Number.
func Float(x float64) Number {
	return Number{f: x, float: true}
}

// IsFloat reports whether n holds a floating-point value.
func (n Number) IsFloat() bool {
	return n.float
}

// Int64 returns n as an integer, truncating floats toward zero.
func (n Number) Int64() int64 {
	if n.float {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns n as a float.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

// truthy reports whether n counts as true for && and ||. Only zero is false.
func (n Number) truthy() bool {
	if n.float {
		return n.f != 0
	}
	return n.i != 0
}

// String formats n. Integers print in decimal. Floats print in the shortest
// form that reads back to the same value and always show a decimal point or
// exponent, e.g. 2.0, 0.5, 1e-05.
func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	return fmtfloat(n.f)
}

func fmtfloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	k := strings.IndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[k+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Format implements fmt.Formatter. The v and s verbs use String; other verbs
// format the underlying int64 or float64, converting between them when the
// verb needs it.
func (n Number) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(st, padded(st, n.String()))
	case 'd', 'b', 'o', 'O', 'x', 'X', 'c', 'q', 'U':
		fmt.Fprintf(st, fmtverb(st, verb), n.Int64())
	default:
		fmt.Fprintf(st, fmtverb(st, verb), n.Float64())
	}
}

// fmtverb reconstructs the formatting directive that st was created from.
func fmtverb(st fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, c := range "+-# 0" {
		if st.Flag(int(c)) {
			b.WriteRune(c)
		}
	}
	if w, ok := st.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if p, ok := st.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteRune(verb)
	return b.String()
}

func padded(st fmt.State, s string) string {
	w, ok := st.Width()
	if !ok || len(s) >= w {
		return s
	}
	pad := strings.Repeat(" ", w-len(s))
	if st.Flag('-') {
		return s + pad
	}
	return pad + s
}
