// Package pycalc evaluates arithmetic and logical expressions.
//
// Expressions are made of integer and floating-point literals, the binary
// operators + - * /, the logical operators && and ||, unary negation, and
// parentheses. "2 + 3 * 4" is 14 and "1 + 3 && 2 + 5 * 2" is 12: logical
// operators bind loosest and return one of their operands, like they do in
// most scripting languages.
//
// Integers stay integers under + - * and negation. Division always produces
// a float, and so does any operation with a float operand.
//
// A minus sign is negation only at the very start of an expression or right
// after an open bracket. Everywhere else it is subtraction, so "5 - -2" is an
// error and "5 - (-2)" is 7.
//
package pycalc
