package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minic-lang/minic/internal/compiler/ast"
	"github.com/minic-lang/minic/internal/compiler/optimizer"
	"github.com/minic-lang/minic/internal/compiler/token"
)

const pipelineSource = `int x = 2 * 3; if (x > 5) { x = x - 1; }`

func TestTokenizeStream(t *testing.T) {
	tokens, err := Tokenize(pipelineSource)
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	wantPrefix := []token.TokenType{
		token.TokenTypeLiteral, token.TokenIdent, token.TokenAssign,
		token.TokenInt, token.TokenAsterisk, token.TokenInt,
		token.TokenSemicolon, token.TokenIf,
	}
	for i, want := range wantPrefix {
		if tokens[i].Type != want {
			t.Fatalf("token %d: expected %s, got %s", i, want, tokens[i].Type)
		}
	}
	if last := tokens[len(tokens)-1]; last.Type != token.TokenEOF {
		t.Fatalf("expected trailing EOF token, got %s", last.Type)
	}
}

// The token stream reproduces a token-equivalent form of the input:
// rejoining lexemes with separators loses only whitespace and comments.
func TestTokenizeRoundTrip(t *testing.T) {
	source := `int x = 41 + 1 ; // the answer`
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	var lexemes []string
	for _, tok := range tokens {
		if tok.Type == token.TokenEOF {
			break
		}
		lexemes = append(lexemes, tok.Literal)
	}
	if got := strings.Join(lexemes, " "); got != "int x = 41 + 1 ;" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestEndToEndPipeline(t *testing.T) {
	program, err := Parse(pipelineSource)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}

	if _, err := Analyze(program); err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	folded, err := optimizer.FoldProgram(program)
	if err != nil {
		t.Fatalf("FoldProgram() error: %v", err)
	}

	// Assignment right-hand sides are not folded: the declaring statement
	// keeps its original BinOp(2, *, 3) value.
	assign := folded.Statements[0].(*ast.AssignStatement)
	value, ok := assign.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("assignment value was folded: got %T", assign.Value)
	}
	if value.Operator != "*" {
		t.Fatalf("assignment value changed: %s", value.String())
	}

	// The if condition (x > 5) has a non-literal operand and stays a BinOp.
	ifStmt := folded.Statements[1].(*ast.IfStatement)
	if _, ok := ifStmt.Condition.(*ast.BinaryExpression); !ok {
		t.Fatalf("if condition unexpectedly folded: got %T", ifStmt.Condition)
	}
}

func TestCompile(t *testing.T) {
	lines, warnings, err := Compile(pipelineSource)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	want := []string{
		"t0 := 2 * 3",
		"x := t0",
		"t0 := x > 5",
		"ifFalse t0 goto L0",
		"t1 := x - 1",
		"x := t1",
		"L0:",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestCompileReportsFirstError(t *testing.T) {
	if _, _, err := Compile(`y = 1;`); err == nil {
		t.Fatalf("expected semantic error for undeclared variable")
	}
	if _, _, err := Compile(`x = ;`); err == nil {
		t.Fatalf("expected parse error for missing expression")
	}
}

func TestCompileAndWrite(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "sample.mc")
	if err := os.WriteFile(srcPath, []byte(pipelineSource), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	outFile, err := CompileAndWrite(srcPath, outDir)
	if err != nil {
		t.Fatalf("CompileAndWrite() error: %v", err)
	}
	if filepath.Base(outFile) != "sample.tac" {
		t.Errorf("expected sample.tac, got %s", outFile)
	}

	content, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(content), "t0 := 2 * 3") {
		t.Errorf("output missing expected TAC:\n%s", content)
	}
}

func TestCompileAndWriteRejectsExtension(t *testing.T) {
	if _, err := CompileAndWrite("program.txt", t.TempDir()); err == nil {
		t.Fatalf("expected extension error")
	}
}
