package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minic-lang/minic/internal/compiler"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFile = ".minic_history"

// repl: compile lines interactively, printing the TAC for each
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compile lines interactively",
	Args:  cobra.NoArgs,
	RunE:  replRun,
}

func replRun(cmd *cobra.Command, args []string) error {
	fmt.Println("minic repl. Enter statements, :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(">> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if strings.EqualFold(code, ":quit") {
				return nil
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		lines, warnings, err := compiler.Compile(code)
		for _, w := range warnings {
			fmt.Println("warning:", w)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		for _, l := range lines {
			fmt.Println(l)
		}
		ln.AppendHistory(code)
	}
}
