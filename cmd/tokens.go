package cmd

import (
	"fmt"
	"os"

	"github.com/minic-lang/minic/internal/compiler"
	"github.com/spf13/cobra"
)

// tokens: dump the token stream as an aligned table
var TokensCmd = &cobra.Command{
	Use:   "tokens <source.mc>",
	Short: "Dump the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  tokensRun,
}

func tokensRun(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, err := compiler.Tokenize(string(content))
	if err != nil {
		return err
	}

	fmt.Printf("%-20s %-10s\n", "Token Type", "Value")
	fmt.Println("-----------------------------------")
	for _, tok := range tokens {
		fmt.Printf("%-20s %-10s\n", tok.Type, tok.Literal)
	}
	return nil
}
