package pycalc

// Compute evaluates an expression. The error, if any, is a *TokenError,
// *BracketError, *MalformedError, or *DivisionError, and always implements
// InputError.
//
// Compute is safe to call concurrently.
func Compute(expression string) (Number, error) {
	tokens, err := lex(expression)
	if err != nil {
		return Number{}, err
	}
	rpn, err := shunt(normalize(tokens))
	if err != nil {
		return Number{}, err
	}
	return evalRPN(rpn)
}

// frame is an operator waiting for its operands during evalRPN.
type frame struct {
	tok lexToken
	op  operator
	// right is the right operand, once full is set.
	right Number
	full  bool
}

// evalRPN reduces an RPN token list to a value by reading it from the end.
// Each operator takes its right operand first, then its left operand unless
// it is unary. Tokens remaining before the first complete operand are
// ignored.
func evalRPN(rpn []lexToken) (Number, error) {
	var stack []frame
	i := len(rpn)
scan:
	for {
		if i == 0 {
			if len(stack) == 0 {
				return Number{}, &MalformedError{Col: 1}
			}
			top := stack[len(stack)-1].tok
			return Number{}, &MalformedError{Col: top.pos, Op: top.text}
		}
		i--
		tok := rpn[i]
		switch tok.kind {
		case tokenOp:
			stack = append(stack, frame{tok: tok, op: lookup(tok.text)})
			continue scan
		case tokenNum: // do nothing
		default:
			panic("pycalc: non-RPN token " + tok.String())
		}
		v := tok.num
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			switch {
			case f.op.unary():
				v = neg(v)
			case !f.full:
				f.right, f.full = v, true
				continue scan
			default:
				r, err := f.op.op.apply(v, f.right, f.tok.pos)
				if err != nil {
					return Number{}, err
				}
				v = r
			}
			stack = stack[:len(stack)-1]
		}
		return v, nil
	}
}
