package parser

import (
	"fmt"
	"strconv"

	"github.com/shibukawa/flatcalc/tokenizer"
)

// NodeKind indicates which shape of AST node a Node is.
type NodeKind int

const (
	LiteralNode NodeKind = iota
	UnaryNode
	BinaryNode
)

// Node is one vertex of the abstract syntax tree. The Kind tag selects which
// fields are meaningful: Value for LiteralNode, Right for UnaryNode (the
// negated operand), Op/Left/Right for BinaryNode. Every node exclusively owns
// its children; the tree is acyclic and never shares subtrees.
type Node struct {
	Kind  NodeKind
	Value int
	Op    tokenizer.TokenOperation
	Left  *Node
	Right *Node
}

// Evaluate computes the integer value of the subtree rooted at n. It is a
// pure post-order traversal; the tree may be evaluated repeatedly.
func (n *Node) Evaluate() (int, error) {
	switch n.Kind {
	case LiteralNode:
		return n.Value, nil
	case UnaryNode:
		value, err := n.Right.Evaluate()
		if err != nil {
			return 0, err
		}

		return -value, nil
	case BinaryNode:
		return n.evaluateBinary()
	default:
		return 0, fmt.Errorf("%w: node kind %d", ErrUnknownOperator, n.Kind)
	}
}

func (n *Node) evaluateBinary() (int, error) {
	left, err := n.Left.Evaluate()
	if err != nil {
		return 0, err
	}

	right, err := n.Right.Evaluate()
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case tokenizer.Addition:
		return left + right, nil
	case tokenizer.Subtraction:
		return left - right, nil
	case tokenizer.Multiplication:
		return left * right, nil
	case tokenizer.Division:
		if right == 0 {
			return 0, ErrDivideByZero
		}

		// Integer division truncates toward zero.
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, n.Op)
	}
}

// String renders the subtree in prefix form, e.g. "(* (+ 1 4) (- 2))".
func (n *Node) String() string {
	switch n.Kind {
	case LiteralNode:
		return strconv.Itoa(n.Value)
	case UnaryNode:
		return "(- " + n.Right.String() + ")"
	case BinaryNode:
		return "(" + operatorSymbol(n.Op) + " " + n.Left.String() + " " + n.Right.String() + ")"
	default:
		return "?"
	}
}

func operatorSymbol(op tokenizer.TokenOperation) string {
	switch op {
	case tokenizer.Addition:
		return "+"
	case tokenizer.Subtraction:
		return "-"
	case tokenizer.Multiplication:
		return "*"
	case tokenizer.Division:
		return "/"
	default:
		return op.String()
	}
}
