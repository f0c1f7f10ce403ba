package pycalc

// Expr = num | Neg | Add | Sub | Mul | Div | And | Or | '(' Expr ')'
// Neg = '-' Expr, only first in an expression or right after '('
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// And = Expr '&&' Expr
// Or = Expr '||' Expr

// normalize returns a copy of tokens in which each minus that is first or
// follows an open bracket is replaced by unary negation.
func normalize(tokens []lexToken) []lexToken {
	r := make([]lexToken, len(tokens))
	for i, tok := range tokens {
		if tok.kind == tokenOp && tok.text == "-" && (i == 0 || r[i-1].kind == tokenOpen) {
			tok.text = negop
		}
		r[i] = tok
	}
	return r
}

// shunt converts normalized infix tokens to reverse Polish notation using
// the shunting-yard algorithm. Operators of equal precedence group left to
// right. tokens is not modified.
func shunt(tokens []lexToken) ([]lexToken, error) {
	rpn := make([]lexToken, 0, len(tokens))
	var ops []lexToken
	for _, tok := range tokens {
		switch tok.kind {
		case tokenNum:
			rpn = append(rpn, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Bracket: tok.text}
				}
				last := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if last.kind == tokenOpen {
					break
				}
				rpn = append(rpn, last)
			}
		case tokenOp:
			prec := lookup(tok.text)
			if prec.op == opNone {
				panic("pycalc: unknown operator: " + tok.String())
			}
			for len(ops) > 0 {
				last := ops[len(ops)-1]
				if last.kind == tokenOpen || prec.outranks(lookup(last.text)) {
					break
				}
				rpn = append(rpn, last)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("pycalc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		last := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if last.kind == tokenOpen {
			return nil, &BracketError{Col: last.pos, Bracket: last.text}
		}
		rpn = append(rpn, last)
	}
	return rpn, nil
}
