package pycalc

import "math"

type opKind int8

const (
	opNone opKind = iota

	opNeg // negate right
	opAdd // left + right
	opSub // left - right
	opMul // left * right
	opDiv // left / right, always real
	opAnd // left if falsy, else right
	opOr  // left if truthy, else right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=opKind -trimprefix=op
//go:generate go mod tidy

// negop is the operator text normalize gives unary minus.
const negop = "neg"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// op is the operation to apply when this operator is evaluated.
	op opKind
}

// outranks reports whether p binds strictly tighter than q. When it doesn't,
// q is popped before p is pushed, so equal precedence groups left to right.
func (p operator) outranks(q operator) bool {
	return p.prec > q.prec
}

func (p operator) unary() bool {
	return p.op == opNeg
}

// lookup gets the operator for a token string. If there is no such operator,
// then the result has an op of opNone.
func lookup(text string) operator {
	switch text {
	case "&&":
		return operator{0, opAnd}
	case "||":
		return operator{0, opOr}
	case "+":
		return operator{1, opAdd}
	case "-":
		return operator{1, opSub}
	case "*":
		return operator{2, opMul}
	case "/":
		return operator{2, opDiv}
	case negop:
		return operator{3, opNeg}
	default:
		return operator{}
	}
}

// neg negates x. Integers stay integers unless negation overflows.
func neg(x Number) Number {
	if x.float {
		return Float(-x.f)
	}
	if x.i == math.MinInt64 {
		return Float(-float64(x.i))
	}
	return Int(-x.i)
}

// apply evaluates a binary operator. pos is the operator's position, for
// errors.
func (k opKind) apply(l, r Number, pos int) (Number, error) {
	switch k {
	case opAnd:
		if !l.truthy() {
			return l, nil
		}
		return r, nil
	case opOr:
		if l.truthy() {
			return l, nil
		}
		return r, nil
	case opDiv:
		if !r.truthy() {
			return Number{}, &DivisionError{Col: pos, X: l}
		}
		return Float(l.Float64() / r.Float64()), nil
	}
	if l.float || r.float {
		x, y := l.Float64(), r.Float64()
		switch k {
		case opAdd:
			return Float(x + y), nil
		case opSub:
			return Float(x - y), nil
		case opMul:
			return Float(x * y), nil
		}
	} else {
		x, y := l.i, r.i
		switch k {
		case opAdd:
			if s := x + y; (x^s)&(y^s) >= 0 {
				return Int(s), nil
			}
			return Float(float64(x) + float64(y)), nil
		case opSub:
			if d := x - y; (x^y)&(x^d) >= 0 {
				return Int(d), nil
			}
			return Float(float64(x) - float64(y)), nil
		case opMul:
			if p, ok := mul64(x, y); ok {
				return Int(p), nil
			}
			return Float(float64(x) * float64(y)), nil
		}
	}
	panic("pycalc: invalid binary operator " + k.String())
}

// mul64 multiplies integers, reporting false if the product overflows.
func mul64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	return p, p/y == x
}
