package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/shibukawa/flatcalc"
)

// Context represents the global context for commands
type Context struct {
	Verbose bool
	Quiet   bool
}

// CLI represents the command-line interface
var CLI struct {
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Print bare results without decoration" short:"q"`
	Eval    EvalCmd    `cmd:"" help:"Evaluate arithmetic expressions"`
	Tokens  TokensCmd  `cmd:"" help:"Show the token sequence of an expression"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("flatcalc v" + flatcalc.Version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
