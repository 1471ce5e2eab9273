package cmd

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/internal/compiler"
	"github.com/minic-lang/minic/internal/compiler/codegen"
	"github.com/minic-lang/minic/internal/compiler/optimizer"
	"github.com/spf13/cobra"
)

// run: full pipeline to stdout, one section per stage
var RunCmd = &cobra.Command{
	Use:   "run <source.mc>",
	Short: "Run the full pipeline and print each stage",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	program, err := compiler.Parse(string(content))
	if err != nil {
		return err
	}

	fmt.Println("=== Semantic Analysis ===")
	warnings, err := compiler.Analyze(program)
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	if err != nil {
		return err
	}
	fmt.Println("ok")

	fmt.Println("=== Optimized AST ===")
	folded, err := optimizer.FoldProgram(program)
	if err != nil {
		return err
	}
	for _, stmt := range folded.Statements {
		fmt.Println(stmt.String())
	}

	fmt.Println("=== Intermediate Code ===")
	for _, line := range codegen.GenerateProgram(folded) {
		fmt.Println(line)
	}
	return nil
}
