package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/flatcalc/parser"
)

// EvalCmd represents the eval command
type EvalCmd struct {
	Expressions []string `arg:"" name:"expression" help:"Expressions to evaluate"`
	AST         bool     `help:"Print the syntax tree before each result"`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
	p := parser.NewParser()

	for _, expr := range cmd.Expressions {
		root, err := p.ParseAST(expr)
		if err != nil {
			return fmt.Errorf("failed to evaluate %q: %w", expr, err)
		}

		if cmd.AST && !ctx.Quiet {
			color.Cyan("%s", root)
		}

		result, err := root.Evaluate()
		if err != nil {
			return fmt.Errorf("failed to evaluate %q: %w", expr, err)
		}

		if ctx.Quiet {
			fmt.Println(result)
		} else {
			color.Green("%s = %d", expr, result)
		}
	}

	return nil
}
