package parser

import (
	"errors"
	"fmt"

	"github.com/shibukawa/flatcalc/tokenizer"
)

// Sentinel errors
var (
	ErrParenthesesMismatch   = errors.New("mismatched parentheses in expression")
	ErrUnexpectedParentheses = errors.New("unexpected parentheses in expression")
	ErrUnexpectedToken       = errors.New("unexpected token encountered")
	ErrDivideByZero          = errors.New("division by zero")
	ErrUnknownOperator       = errors.New("unknown operator")
)

// Parser performs recursive descent over a token sequence to build an
// abstract syntax tree.
//
// Grammar:
//
//	Expression -> Binary
//	Binary     -> Unary (("+" | "-" | "*" | "/") Unary)*
//	Unary      -> "-" Unary | Primary
//	Primary    -> Literal | "(" Expression ")"
//
// All four binary operators share one precedence level and fold strictly
// left to right, so "1 + 4 * -2" is (1 + 4) * -2, not 1 + (4 * -2). This is
// the defining deviation from conventional arithmetic. An instance holds the
// cursor of the parse in progress and is not safe for concurrent use.
type Parser struct {
	lexer   *tokenizer.Tokenizer
	current int
}

// NewParser creates a Parser with its own Tokenizer
func NewParser() *Parser {
	return &Parser{lexer: tokenizer.NewTokenizer()}
}

// Parse tokenizes expr, builds the AST, and evaluates it
func (p *Parser) Parse(expr string) (int, error) {
	root, err := p.ParseAST(expr)
	if err != nil {
		return 0, err
	}

	return root.Evaluate()
}

// ParseAST tokenizes expr and builds the AST without evaluating it. The
// returned tree is pure, so callers may keep it and evaluate it repeatedly.
func (p *Parser) ParseAST(expr string) (*Node, error) {
	p.current = 0
	p.lexer.ClearTokens()

	if err := p.lexer.Tokenize(expr); err != nil {
		return nil, err
	}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current < p.lexer.TokenCount() {
		// Tokens left over after recursion has unwound can only be a closing
		// parenthesis that never opened a Primary; any nested imbalance is
		// rejected inside parsePrimary before we get here.
		return nil, ErrUnexpectedParentheses
	}

	return root, nil
}

// matchAndAdvance is the only primitive that inspects or consumes tokens. If
// the token at the cursor has the wanted operation the cursor advances by one
// and it reports true; otherwise the cursor is left unchanged.
func (p *Parser) matchAndAdvance(op tokenizer.TokenOperation) bool {
	if p.current >= p.lexer.TokenCount() {
		return false
	}

	token, err := p.lexer.Token(p.current)
	if err != nil || token.Operation != op {
		return false
	}

	p.current++

	return true
}

// parseExpression is the entry point of the recursive parse. It is kept as
// its own grammar level for extensibility; it adds no behavior over Binary.
func (p *Parser) parseExpression() (*Node, error) {
	return p.parseBinary()
}

func (p *Parser) parseBinary() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	// A token carries exactly one operation, so at most one of the four
	// trials matches per iteration.
	for p.matchAndAdvance(tokenizer.Addition) ||
		p.matchAndAdvance(tokenizer.Subtraction) ||
		p.matchAndAdvance(tokenizer.Multiplication) ||
		p.matchAndAdvance(tokenizer.Division) {
		operator, err := p.lexer.Token(p.current - 1)
		if err != nil {
			return nil, err
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &Node{Kind: BinaryNode, Op: operator.Operation, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseUnary() (*Node, error) {
	if p.matchAndAdvance(tokenizer.Subtraction) {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Node{Kind: UnaryNode, Right: operand}, nil
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*Node, error) {
	if p.matchAndAdvance(tokenizer.Literal) {
		token, err := p.lexer.Token(p.current - 1)
		if err != nil {
			return nil, err
		}

		return &Node{Kind: LiteralNode, Value: token.Value}, nil
	}

	if p.matchAndAdvance(tokenizer.LeftParen) {
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if !p.matchAndAdvance(tokenizer.RightParen) {
			return nil, ErrParenthesesMismatch
		}

		// Parentheses only group; they contribute no node of their own.
		return inner, nil
	}

	// The token here is neither an operand nor an opening parenthesis.
	// Report it by raw text, clamping the cursor to the last token so that
	// running off the end of the sequence names the last thing we saw.
	idx := p.current
	if last := p.lexer.TokenCount() - 1; idx > last {
		idx = last
	}

	token, err := p.lexer.Token(idx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedToken, err)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnexpectedToken, token.Raw)
}
