package cmd

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/internal/compiler"
	"github.com/minic-lang/minic/internal/compiler/ast"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

var rawDump bool

// ast: parse and print the syntax tree
var AstCmd = &cobra.Command{
	Use:   "ast <source.mc>",
	Short: "Print the abstract syntax tree for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  astRun,
}

func init() {
	AstCmd.Flags().BoolVar(&rawDump, "raw", false, "dump the raw node structs instead of the tree view")
}

func astRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	program, err := compiler.Parse(string(content))
	if err != nil {
		return err
	}

	if rawDump {
		litter.Dump(program)
		return nil
	}

	fmt.Println("Program")
	for _, stmt := range program.Statements {
		ast.Fprint(os.Stdout, stmt, "  ")
	}
	return nil
}
