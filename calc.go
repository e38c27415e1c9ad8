// Package flatcalc evaluates single-line integer arithmetic expressions with
// a deliberately flattened grammar: addition, subtraction, multiplication and
// division share one precedence level and associate left to right, unary
// minus may be chained, and parentheses group. "1 + 4 * -2" is therefore
// (1 + 4) * -2 = -10.
package flatcalc

import "github.com/shibukawa/flatcalc/parser"

// Version is the current release version
const Version = "0.1.0"

// Evaluate parses and evaluates expr with a fresh parser instance. Failures
// surface as the sentinel errors of the tokenizer and parser packages.
func Evaluate(expr string) (int, error) {
	return parser.NewParser().Parse(expr)
}
