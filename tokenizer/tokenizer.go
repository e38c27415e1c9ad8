package tokenizer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Tokenizer converts a single arithmetic expression into an ordered token
// sequence. An instance holds the tokens of the most recent Tokenize call and
// may be reused after ClearTokens. It is not safe for concurrent use.
type Tokenizer struct {
	expression string
	tokens     []Token
}

// NewTokenizer creates an empty Tokenizer
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize scans expr and populates the token sequence.
//
// The scan happens in two passes. The first pass collects every character
// outside the allowed alphabet (digits, the four operators, parentheses and
// whitespace); if any exist the whole expression is rejected with
// ErrInvalidToken naming all of them, not just the first. The second pass
// extracts the tokens left to right: maximal digit runs become literals,
// each operator or parenthesis is a single-character token, whitespace is
// skipped and never captured.
func (t *Tokenizer) Tokenize(expr string) error {
	t.expression = expr

	invalid := scanInvalid(expr)
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidToken, strings.Join(invalid, ", "))
	}

	raws := scanRawTokens(expr)
	if len(raws) == 0 {
		return ErrEmptyExpression
	}

	for _, raw := range raws {
		token := Token{Operation: None, Value: ValueNotApplicable, Raw: raw}

		// Classification is by first character; anything that is not an
		// operator or parenthesis can only be a digit run.
		switch raw[0] {
		case '(':
			token.Operation = LeftParen
		case ')':
			token.Operation = RightParen
		case '-':
			token.Operation = Subtraction
		case '+':
			token.Operation = Addition
		case '*':
			token.Operation = Multiplication
		case '/':
			token.Operation = Division
		default:
			value, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidToken, raw)
			}

			token.Operation = Literal
			token.Value = value
		}

		t.tokens = append(t.tokens, token)
	}

	return nil
}

// Token returns the token at idx
func (t *Tokenizer) Token(idx int) (Token, error) {
	if idx < 0 || idx >= len(t.tokens) {
		return Token{}, fmt.Errorf("%w: %d", ErrTokenIndexOutOfRange, idx)
	}

	return t.tokens[idx], nil
}

// TokenCount returns the number of tokens extracted by the last Tokenize call
func (t *Tokenizer) TokenCount() int {
	return len(t.tokens)
}

// AllTokens returns a copy of the token sequence (for debugging and dumps)
func (t *Tokenizer) AllTokens() []Token {
	return slices.Clone(t.tokens)
}

// Expression returns the source text of the last Tokenize call, or the
// empty string after ClearTokens.
func (t *Tokenizer) Expression() string {
	return t.expression
}

// ClearTokens empties the token sequence and forgets the cached expression,
// preparing the instance for reuse on a new expression.
func (t *Tokenizer) ClearTokens() {
	t.tokens = nil
	t.expression = ""
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '(', ')':
		return true
	default:
		return false
	}
}

// scanInvalid collects every character outside the allowed alphabet, one
// substring per offending character, in source order.
func scanInvalid(expr string) []string {
	var invalid []string

	for _, r := range expr {
		if unicode.IsDigit(r) || isOperator(r) || unicode.IsSpace(r) {
			continue
		}

		invalid = append(invalid, string(r))
	}

	return invalid
}

// scanRawTokens extracts the raw substrings of all valid tokens in source
// order: maximal digit runs and single operator/parenthesis characters.
func scanRawTokens(expr string) []string {
	var raws []string

	runes := []rune(expr)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}

			raws = append(raws, string(runes[start:i]))
		case isOperator(r):
			raws = append(raws, string(r))
			i++
		default:
			// Whitespace; the invalid sweep already ran.
			i++
		}
	}

	return raws
}
