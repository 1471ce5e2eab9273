package cmd

import (
	"fmt"

	"github.com/minic-lang/minic/internal/compiler"
	"github.com/spf13/cobra"
)

// build: compile .mc -> .tac
var BuildCmd = &cobra.Command{
	Use:   "build <source.mc>",
	Short: "Compile a source file into three-address code",
	Args:  cobra.ExactArgs(1),
	RunE:  buildRun,
}

func buildRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	outFile, err := compiler.CompileAndWrite(src, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outFile)
	return nil
}
