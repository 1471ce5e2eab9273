// Package codegen lowers the AST to three-address code: one operator and at
// most two source operands per instruction, results in temporaries t0, t1
// and so on, with labels L0, L1 for control flow.
package codegen

import (
	"fmt"

	"github.com/minic-lang/minic/internal/compiler/ast"
)

// generator holds the per-run scratch state. Both counters live for exactly
// one Generate call, so identical trees always produce identical code and
// concurrent generations never share numbering.
type generator struct {
	lines      []string
	tempCount  int
	labelCount int
}

// Generate emits the instruction sequence for one top-level statement.
// Temporary and label counters start from zero on every call.
func Generate(node ast.Node) []string {
	g := &generator{}
	g.genStatement(node)
	return g.lines
}

// GenerateProgram emits code for each top-level statement in order. Each
// statement is its own generation run, matching the per-call counter reset.
func GenerateProgram(program *ast.Program) []string {
	var lines []string
	for _, stmt := range program.Statements {
		lines = append(lines, Generate(stmt)...)
	}
	return lines
}

func (g *generator) emit(format string, args ...any) {
	g.lines = append(g.lines, fmt.Sprintf(format, args...))
}

func (g *generator) newTemp() string {
	t := fmt.Sprintf("t%d", g.tempCount)
	g.tempCount++
	return t
}

func (g *generator) newLabel() string {
	l := fmt.Sprintf("L%d", g.labelCount)
	g.labelCount++
	return l
}

func (g *generator) genStatement(node ast.Node) {
	switch n := node.(type) {
	case *ast.AssignStatement:
		value := g.genExpression(n.Value)
		g.emit("%s := %s", n.Name, value)

	case *ast.BlockStatement:
		for _, stmt := range n.Statements {
			g.genStatement(stmt)
		}

	case *ast.IfStatement:
		cond := g.genExpression(n.Condition)
		if n.Else == nil {
			end := g.newLabel()
			g.emit("ifFalse %s goto %s", cond, end)
			g.genStatement(n.Then)
			g.emit("%s:", end)
		} else {
			elseLabel := g.newLabel()
			end := g.newLabel()
			g.emit("ifFalse %s goto %s", cond, elseLabel)
			g.genStatement(n.Then)
			g.emit("goto %s", end)
			g.emit("%s:", elseLabel)
			g.genStatement(n.Else)
			g.emit("%s:", end)
		}

	case *ast.WhileStatement:
		start := g.newLabel()
		end := g.newLabel()
		g.emit("%s:", start)
		cond := g.genExpression(n.Condition)
		g.emit("ifFalse %s goto %s", cond, end)
		g.genStatement(n.Body)
		g.emit("goto %s", start)
		g.emit("%s:", end)

	case *ast.ForStatement:
		g.genStatement(n.Init)
		start := g.newLabel()
		end := g.newLabel()
		g.emit("%s:", start)
		cond := g.genExpression(n.Condition)
		g.emit("ifFalse %s goto %s", cond, end)
		g.genStatement(n.Body)
		g.genStatement(n.Update)
		g.emit("goto %s", start)
		g.emit("%s:", end)

	case *ast.ReturnStatement:
		if n.Value == nil {
			g.emit("return")
		} else {
			g.emit("return %s", g.genExpression(n.Value))
		}

	default:
		// A bare expression at statement position still evaluates.
		g.genExpression(node)
	}
}

// genExpression returns the operand text holding the expression's value,
// emitting instructions as a side effect in left-to-right order. Leaves
// return their text directly without emitting anything; each binary
// operation gets one fresh temporary.
func (g *generator) genExpression(node ast.Node) string {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return n.String()
	case *ast.FloatLiteral:
		return n.String()
	case *ast.StringLiteral:
		return n.String()
	case *ast.Identifier:
		return n.Name
	case *ast.BinaryExpression:
		left := g.genExpression(n.Left)
		right := g.genExpression(n.Right)
		temp := g.newTemp()
		g.emit("%s := %s %s %s", temp, left, n.Operator, right)
		return temp
	default:
		return ""
	}
}
