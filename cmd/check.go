package cmd

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/internal/compiler"
	"github.com/spf13/cobra"
)

// check: run semantic analysis only
var CheckCmd = &cobra.Command{
	Use:   "check <source.mc>",
	Short: "Run semantic analysis on a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  checkRun,
}

func checkRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	program, err := compiler.Parse(string(content))
	if err != nil {
		return err
	}

	warnings, err := compiler.Analyze(program)
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	if err != nil {
		return err
	}

	fmt.Println("Semantic analysis done.")
	return nil
}
