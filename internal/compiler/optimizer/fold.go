package optimizer

import (
	"errors"

	"github.com/minic-lang/minic/internal/compiler/ast"
)

// ErrDivisionByZero is returned when folding would divide integer literals
// by zero. Floating-point division by zero folds to the IEEE result instead.
var ErrDivisionByZero = errors.New("constant folding: integer division by zero")

// Fold rewrites subtrees whose operands are compile-time literals into
// single literal nodes, bottom-up. It never mutates its input; rebuilt nodes
// are fresh. Relational operators are left unevaluated even over literals,
// and assignment right-hand sides are deliberately not folded: only
// control-construct conditions/bodies and nested binary expressions are.
func Fold(node ast.Node) (ast.Node, error) {
	switch n := node.(type) {
	case *ast.BinaryExpression:
		return foldBinary(n)

	case *ast.AssignStatement:
		// Shallow rebuild; the value expression is passed through unfolded.
		return &ast.AssignStatement{Name: n.Name, DeclaredType: n.DeclaredType, Value: n.Value}, nil

	case *ast.IfStatement:
		cond, err := Fold(n.Condition)
		if err != nil {
			return nil, err
		}
		then, err := foldBlock(n.Then)
		if err != nil {
			return nil, err
		}
		elseBlock := n.Else
		if elseBlock != nil {
			elseBlock, err = foldBlock(n.Else)
			if err != nil {
				return nil, err
			}
		}
		return &ast.IfStatement{Condition: cond, Then: then, Else: elseBlock}, nil

	case *ast.ForStatement:
		// Init, condition and update are passed through unfolded.
		body, err := foldBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{Init: n.Init, Condition: n.Condition, Update: n.Update, Body: body}, nil

	case *ast.WhileStatement:
		// The condition is passed through unfolded.
		body, err := foldBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Condition: n.Condition, Body: body}, nil

	case *ast.ReturnStatement:
		if n.Value == nil {
			return n, nil
		}
		value, err := Fold(n.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Value: value}, nil

	default:
		// Blocks, literals and identifiers pass through unchanged.
		return node, nil
	}
}

// FoldProgram folds every top-level statement, returning a new program.
func FoldProgram(program *ast.Program) (*ast.Program, error) {
	folded := &ast.Program{Statements: make([]ast.Node, 0, len(program.Statements))}
	for _, stmt := range program.Statements {
		f, err := Fold(stmt)
		if err != nil {
			return nil, err
		}
		folded.Statements = append(folded.Statements, f)
	}
	return folded, nil
}

func foldBlock(block *ast.BlockStatement) (*ast.BlockStatement, error) {
	folded, err := Fold(block)
	if err != nil {
		return nil, err
	}
	return folded.(*ast.BlockStatement), nil
}

func foldBinary(n *ast.BinaryExpression) (ast.Node, error) {
	left, err := Fold(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := Fold(n.Right)
	if err != nil {
		return nil, err
	}

	if lInt, ok := left.(*ast.IntegerLiteral); ok {
		if rInt, ok := right.(*ast.IntegerLiteral); ok {
			switch n.Operator {
			case "+":
				return &ast.IntegerLiteral{Value: lInt.Value + rInt.Value}, nil
			case "-":
				return &ast.IntegerLiteral{Value: lInt.Value - rInt.Value}, nil
			case "*":
				return &ast.IntegerLiteral{Value: lInt.Value * rInt.Value}, nil
			case "/":
				if rInt.Value == 0 {
					return nil, ErrDivisionByZero
				}
				// Truncates toward zero, same as the source language.
				return &ast.IntegerLiteral{Value: lInt.Value / rInt.Value}, nil
			default:
				// Relational operators stay unevaluated.
				return &ast.BinaryExpression{Left: left, Operator: n.Operator, Right: right}, nil
			}
		}
	}

	if lFloat, ok := left.(*ast.FloatLiteral); ok {
		if rFloat, ok := right.(*ast.FloatLiteral); ok {
			switch n.Operator {
			case "+":
				return &ast.FloatLiteral{Value: lFloat.Value + rFloat.Value}, nil
			case "-":
				return &ast.FloatLiteral{Value: lFloat.Value - rFloat.Value}, nil
			case "*":
				return &ast.FloatLiteral{Value: lFloat.Value * rFloat.Value}, nil
			case "/":
				return &ast.FloatLiteral{Value: lFloat.Value / rFloat.Value}, nil
			default:
				return &ast.BinaryExpression{Left: left, Operator: n.Operator, Right: right}, nil
			}
		}
	}

	// Mixed int/float literals: promote the int side and retry. The
	// promotion terminates the recursion in one further step.
	if lInt, ok := left.(*ast.IntegerLiteral); ok {
		if _, ok := right.(*ast.FloatLiteral); ok {
			return Fold(&ast.BinaryExpression{
				Left:     &ast.FloatLiteral{Value: float64(lInt.Value)},
				Operator: n.Operator,
				Right:    right,
			})
		}
	}
	if _, ok := left.(*ast.FloatLiteral); ok {
		if rInt, ok := right.(*ast.IntegerLiteral); ok {
			return Fold(&ast.BinaryExpression{
				Left:     left,
				Operator: n.Operator,
				Right:    &ast.FloatLiteral{Value: float64(rInt.Value)},
			})
		}
	}

	// At least one non-literal operand: rebuild over the folded children.
	return &ast.BinaryExpression{Left: left, Operator: n.Operator, Right: right}, nil
}
