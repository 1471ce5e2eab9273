package semantic

import (
	"fmt"

	"github.com/minic-lang/minic/internal/compiler/ast"
	"github.com/minic-lang/minic/internal/compiler/scope"
	"github.com/minic-lang/minic/internal/compiler/symbols"
)

// SemanticError is the analyzer's single failure kind. The first offending
// statement aborts analysis; there is no error list.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string {
	return "semantic error: " + e.Message
}

func semanticErrorf(format string, args ...any) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf(format, args...)}
}

// Analyzer walks the AST checking declarations and type compatibility. The
// symbol table lives for one Analyzer; construct a fresh one per compilation
// so unrelated runs never share state.
type Analyzer struct {
	scope    *scope.Scope
	warnings []string
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		scope: scope.NewScope(),
	}
}

// Warnings returns the non-fatal findings (implicit int to float widening)
// collected so far.
func (a *Analyzer) Warnings() []string {
	return a.warnings
}

func (a *Analyzer) addWarning(format string, args ...any) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

// AnalyzeProgram analyzes every top-level statement in program order,
// stopping at the first error.
func (a *Analyzer) AnalyzeProgram(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := a.Analyze(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Analyze checks one statement (or expression) subtree.
func (a *Analyzer) Analyze(node ast.Node) error {
	switch n := node.(type) {
	case *ast.AssignStatement:
		return a.analyzeAssign(n)
	case *ast.BinaryExpression:
		return a.analyzeBinOp(n)
	case *ast.IfStatement:
		return a.analyzeIf(n)
	case *ast.ForStatement:
		return a.analyzeFor(n)
	case *ast.WhileStatement:
		return a.analyzeWhile(n)
	case *ast.ReturnStatement:
		return a.analyzeReturn(n)
	case *ast.BlockStatement:
		for _, stmt := range n.Statements {
			if err := a.Analyze(stmt); err != nil {
				return err
			}
		}
		return nil
	case *ast.Identifier, *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral:
		return nil
	default:
		return nil
	}
}

// analyzeAssign checks a declaring or reassigning statement. The right-hand
// side is typed before the declaration takes effect, so `int x = x;` fails
// with an undeclared variable.
func (a *Analyzer) analyzeAssign(n *ast.AssignStatement) error {
	rhsType, err := a.exprType(n.Value)
	if err != nil {
		return err
	}

	if n.DeclaredType != "" {
		if err := a.scope.Define(n.Name, symbols.SymbolInfo{Type: n.DeclaredType}); err != nil {
			return &SemanticError{Message: err.Error()}
		}
	}

	info, ok := a.scope.Lookup(n.Name)
	if !ok {
		return semanticErrorf("undeclared variable: %s", n.Name)
	}
	lhsType := info.Type

	if lhsType == "string" && rhsType != "string" {
		return semanticErrorf("cannot assign non-string to string")
	}
	if lhsType == "int" && rhsType == "float" {
		return semanticErrorf("type mismatch: cannot assign float to int")
	}
	if lhsType == "float" && rhsType == "int" {
		a.addWarning("implicit cast: assigning int to float variable '%s'", n.Name)
	}
	if lhsType != rhsType && !(lhsType == "float" && rhsType == "int") {
		return semanticErrorf("type mismatch: cannot assign %s to %s", rhsType, lhsType)
	}
	return nil
}

func (a *Analyzer) analyzeBinOp(n *ast.BinaryExpression) error {
	leftType, err := a.exprType(n.Left)
	if err != nil {
		return err
	}
	rightType, err := a.exprType(n.Right)
	if err != nil {
		return err
	}

	if leftType != rightType &&
		!(leftType == "float" && rightType == "int") &&
		!(leftType == "int" && rightType == "float") {
		return semanticErrorf("type mismatch in binary operation: %s %s %s", leftType, n.Operator, rightType)
	}
	return nil
}

func (a *Analyzer) checkCondition(cond ast.Node, construct string) error {
	condType, err := a.exprType(cond)
	if err != nil {
		return err
	}
	if condType != "int" && condType != "float" {
		return semanticErrorf("invalid condition type in %s: expected int or float, got %s", construct, condType)
	}
	return nil
}

func (a *Analyzer) analyzeIf(n *ast.IfStatement) error {
	return a.checkCondition(n.Condition, "if statement")
}

func (a *Analyzer) analyzeFor(n *ast.ForStatement) error {
	if err := a.Analyze(n.Init); err != nil {
		return err
	}
	if err := a.checkCondition(n.Condition, "for loop"); err != nil {
		return err
	}
	if err := a.Analyze(n.Update); err != nil {
		return err
	}
	return a.Analyze(n.Body)
}

func (a *Analyzer) analyzeWhile(n *ast.WhileStatement) error {
	if err := a.checkCondition(n.Condition, "while statement"); err != nil {
		return err
	}
	return a.Analyze(n.Body)
}

func (a *Analyzer) analyzeReturn(n *ast.ReturnStatement) error {
	if n.Value == nil {
		return nil
	}
	returnType, err := a.exprType(n.Value)
	if err != nil {
		return err
	}
	if returnType == "unknown" {
		return semanticErrorf("return statement returns unknown type")
	}
	return nil
}

// exprType infers the type of an expression. There is no inference beyond
// the literal/variable/binary cases; anything else is "unknown".
func (a *Analyzer) exprType(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return "int", nil
	case *ast.FloatLiteral:
		return "float", nil
	case *ast.StringLiteral:
		return "string", nil
	case *ast.Identifier:
		info, ok := a.scope.Lookup(n.Name)
		if !ok {
			return "", semanticErrorf("undeclared variable: %s", n.Name)
		}
		return info.Type, nil
	case *ast.BinaryExpression:
		return a.inferBinOpType(n)
	default:
		return "unknown", nil
	}
}

// inferBinOpType resolves the result type of a binary operation: int if both
// operands are int, float if either is float, error otherwise (strings never
// participate in arithmetic or comparisons).
func (a *Analyzer) inferBinOpType(n *ast.BinaryExpression) (string, error) {
	leftType, err := a.exprType(n.Left)
	if err != nil {
		return "", err
	}
	rightType, err := a.exprType(n.Right)
	if err != nil {
		return "", err
	}

	switch {
	case leftType == "int" && rightType == "int":
		return "int", nil
	case leftType == "float" && rightType == "float":
		return "float", nil
	case leftType == "int" && rightType == "float",
		leftType == "float" && rightType == "int":
		return "float", nil
	default:
		return "", semanticErrorf("incompatible types in binary operation: %s %s %s", leftType, n.Operator, rightType)
	}
}
