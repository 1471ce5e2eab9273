package cmd

import (
	"github.com/spf13/cobra"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "minic is a mini-language compiler front end",
	Long: `minic compiles a small imperative language to three-address code.

Commands:
  tokens  Dump the token stream for a source file
  ast     Print the abstract syntax tree
  check   Run semantic analysis
  run     Run the full pipeline and print each stage
  build   Compile a (.mc) source file into (.tac) three-address code
  repl    Compile lines interactively
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for build artifacts")

	rootCmd.AddCommand(TokensCmd, AstCmd, CheckCmd, RunCmd, BuildCmd, ReplCmd)
}
