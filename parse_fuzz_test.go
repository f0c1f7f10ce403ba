package pycalc

import (
	"reflect"
	"testing"
)

func FuzzShunt(f *testing.F) {
	f.Add("x")
	f.Add("((1) - -2)")
	f.Add("1 || 2 && 3")
	f.Fuzz(func(t *testing.T, s string) {
		tokens, err := lex(s)
		if err != nil {
			return
		}
		tokens = normalize(tokens)
		a, aerr := shunt(tokens)
		b, berr := shunt(tokens)
		if !reflect.DeepEqual(a, b) || (aerr == nil) != (berr == nil) {
			t.Errorf("%q shunts differently: %v (%v) then %v (%v)", s, a, aerr, b, berr)
		}
	})
}
