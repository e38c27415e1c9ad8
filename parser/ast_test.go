package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shibukawa/flatcalc/tokenizer"
)

func TestNodeEvaluate(t *testing.T) {
	literal := &Node{Kind: LiteralNode, Value: 7}

	got, err := literal.Evaluate()
	assert.NoError(t, err)
	assert.Equal(t, 7, got)

	negated := &Node{Kind: UnaryNode, Right: literal}

	got, err = negated.Evaluate()
	assert.NoError(t, err)
	assert.Equal(t, -7, got)

	doubleNegated := &Node{Kind: UnaryNode, Right: negated}

	got, err = doubleNegated.Evaluate()
	assert.NoError(t, err)
	assert.Equal(t, 7, got)

	sum := &Node{
		Kind:  BinaryNode,
		Op:    tokenizer.Addition,
		Left:  literal,
		Right: doubleNegated,
	}

	got, err = sum.Evaluate()
	assert.NoError(t, err)
	assert.Equal(t, 14, got)
}

func TestNodeEvaluateDivideByZero(t *testing.T) {
	division := &Node{
		Kind:  BinaryNode,
		Op:    tokenizer.Division,
		Left:  &Node{Kind: LiteralNode, Value: 5},
		Right: &Node{Kind: LiteralNode, Value: 0},
	}

	_, err := division.Evaluate()
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestNodeEvaluateErrorPropagation(t *testing.T) {
	// A failure deep in the tree surfaces through every ancestor.
	inner := &Node{
		Kind:  BinaryNode,
		Op:    tokenizer.Division,
		Left:  &Node{Kind: LiteralNode, Value: 1},
		Right: &Node{Kind: LiteralNode, Value: 0},
	}
	outer := &Node{
		Kind:  BinaryNode,
		Op:    tokenizer.Addition,
		Left:  &Node{Kind: UnaryNode, Right: inner},
		Right: &Node{Kind: LiteralNode, Value: 3},
	}

	_, err := outer.Evaluate()
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestNodeEvaluateUnknownOperator(t *testing.T) {
	// Unreachable through the parser; the defensive case still has to hold
	// for hand-built nodes.
	broken := &Node{
		Kind:  BinaryNode,
		Op:    tokenizer.LeftParen,
		Left:  &Node{Kind: LiteralNode, Value: 1},
		Right: &Node{Kind: LiteralNode, Value: 2},
	}

	_, err := broken.Evaluate()
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestNodeString(t *testing.T) {
	node := &Node{
		Kind: BinaryNode,
		Op:   tokenizer.Subtraction,
		Left: &Node{Kind: LiteralNode, Value: 10},
		Right: &Node{
			Kind:  UnaryNode,
			Right: &Node{Kind: LiteralNode, Value: 4},
		},
	}

	assert.Equal(t, "(- 10 (- 4))", node.String())
}
