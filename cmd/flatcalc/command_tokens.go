package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/flatcalc/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	Expression string `arg:"" help:"Expression to tokenize"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	t := tokenizer.NewTokenizer()
	if err := t.Tokenize(cmd.Expression); err != nil {
		return fmt.Errorf("failed to tokenize %q: %w", cmd.Expression, err)
	}

	if ctx.Verbose {
		color.Cyan("%d token(s) in %q", t.TokenCount(), t.Expression())
	}

	for i, token := range t.AllTokens() {
		fmt.Printf("%3d  %s\n", i, token)
	}

	return nil
}
