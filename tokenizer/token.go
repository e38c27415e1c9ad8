package tokenizer

import (
	"errors"
	"strconv"
)

// Sentinel errors
var (
	ErrInvalidToken         = errors.New("invalid token(s) detected in expression")
	ErrEmptyExpression      = errors.New("empty expression is invalid")
	ErrTokenIndexOutOfRange = errors.New("token index is out of range")
)

// TokenOperation represents the arithmetic meaning of a token
type TokenOperation int

const (
	None TokenOperation = iota
	Literal
	LeftParen  // (
	RightParen // )
	Subtraction
	Addition
	Multiplication
	Division
)

// String returns the string representation of TokenOperation
func (o TokenOperation) String() string {
	switch o {
	case None:
		return "NONE"
	case Literal:
		return "LITERAL"
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case Subtraction:
		return "SUBTRACTION"
	case Addition:
		return "ADDITION"
	case Multiplication:
		return "MULTIPLICATION"
	case Division:
		return "DIVISION"
	default:
		return "UNKNOWN"
	}
}

// ValueNotApplicable fills the Value field of every non-literal token.
const ValueNotApplicable = -1

// Token represents one lexical unit extracted from an expression
type Token struct {
	Operation TokenOperation
	Value     int    // meaningful only when Operation is Literal
	Raw       string // exact substring the token was matched from
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Operation == Literal {
		return t.Operation.String() + ": " + strconv.Itoa(t.Value)
	}

	return t.Operation.String() + ": " + t.Raw
}
