// Package compiler ties the phases together and exposes the entry points the
// CLI (or any other driver) consumes: tokenize, parse, analyze, fold and
// generate, plus file-oriented compilation.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minic-lang/minic/internal/compiler/ast"
	"github.com/minic-lang/minic/internal/compiler/codegen"
	"github.com/minic-lang/minic/internal/compiler/lexer"
	"github.com/minic-lang/minic/internal/compiler/optimizer"
	"github.com/minic-lang/minic/internal/compiler/parser"
	"github.com/minic-lang/minic/internal/compiler/semantic"
	"github.com/minic-lang/minic/internal/compiler/token"
)

const sourceExt = ".mc"

// Tokenize scans the whole source and returns the token stream, including
// the trailing EOF token. The error is non-nil only for an unterminated
// string literal; garbage characters come back as ILLEGAL tokens instead.
func Tokenize(source string) ([]token.Token, error) {
	l := lexer.NewLexer(source)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.TokenEOF {
			return tokens, nil
		}
	}
}

// Parse produces the ordered top-level statements for a source string.
func Parse(source string) (*ast.Program, error) {
	p := parser.NewParser(lexer.NewLexer(source))
	return p.ParseProgram()
}

// Analyze type-checks a parsed program. It returns the widening warnings
// gathered before the first error (if any).
func Analyze(program *ast.Program) ([]string, error) {
	a := semantic.NewAnalyzer()
	err := a.AnalyzeProgram(program)
	return a.Warnings(), err
}

// Compile runs the full pipeline over a source string: parse, analyze, fold,
// generate. It returns the TAC lines and any analyzer warnings.
func Compile(source string) (lines []string, warnings []string, err error) {
	program, err := Parse(source)
	if err != nil {
		return nil, nil, err
	}
	warnings, err = Analyze(program)
	if err != nil {
		return nil, warnings, err
	}
	folded, err := optimizer.FoldProgram(program)
	if err != nil {
		return nil, warnings, err
	}
	return codegen.GenerateProgram(folded), warnings, nil
}

// CompileAndWrite compiles a .mc source file and writes the TAC to
// <outDir>/<name>.tac, returning the output path.
func CompileAndWrite(srcPath, outDir string) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return "", err
	}

	lines, _, err := Compile(content)
	if err != nil {
		return "", err
	}

	return writeOutput(lines, srcPath, outDir)
}

func validateExtension(path string) error {
	if filepath.Ext(path) != sourceExt {
		return fmt.Errorf("source must have %s extension", sourceExt)
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeOutput(lines []string, srcPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(srcPath), sourceExt)+".tac")
	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	return outFile, os.WriteFile(outFile, []byte(text), 0o644)
}
