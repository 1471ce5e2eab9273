package ast

import (
	"fmt"
	"io"
)

// Fprint writes an indented tree view of a node to w. This is the default
// renderer for the CLI; anything fancier can walk Children() itself.
func Fprint(w io.Writer, node Node, indent string) {
	switch n := node.(type) {
	case *AssignStatement:
		label := "Assign: " + n.Name
		if n.DeclaredType != "" {
			label = "Assign: " + n.DeclaredType + " " + n.Name
		}
		fmt.Fprintln(w, indent+label)
		Fprint(w, n.Value, indent+"  ")

	case *BinaryExpression:
		fmt.Fprintln(w, indent+"Binary Operation: "+n.Operator)
		Fprint(w, n.Left, indent+"  ")
		Fprint(w, n.Right, indent+"  ")

	case *IntegerLiteral:
		fmt.Fprintln(w, indent+"Integer:", n.Value)

	case *FloatLiteral:
		fmt.Fprintln(w, indent+"Float:", n.String())

	case *StringLiteral:
		fmt.Fprintln(w, indent+"String:", n.String())

	case *Identifier:
		fmt.Fprintln(w, indent+"Var: "+n.Name)

	case *IfStatement:
		fmt.Fprintln(w, indent+"If Statement:")
		Fprint(w, n.Condition, indent+"  ")
		fmt.Fprintln(w, indent+"  Then:")
		Fprint(w, n.Then, indent+"    ")
		if n.Else != nil {
			fmt.Fprintln(w, indent+"  Else:")
			Fprint(w, n.Else, indent+"    ")
		}

	case *ForStatement:
		fmt.Fprintln(w, indent+"For Loop:")
		fmt.Fprintln(w, indent+"  Initialization:")
		Fprint(w, n.Init, indent+"    ")
		fmt.Fprintln(w, indent+"  Condition:")
		Fprint(w, n.Condition, indent+"    ")
		fmt.Fprintln(w, indent+"  Update:")
		Fprint(w, n.Update, indent+"    ")
		fmt.Fprintln(w, indent+"  Body:")
		Fprint(w, n.Body, indent+"    ")

	case *WhileStatement:
		fmt.Fprintln(w, indent+"While Statement:")
		Fprint(w, n.Condition, indent+"  ")
		Fprint(w, n.Body, indent+"  ")

	case *ReturnStatement:
		fmt.Fprintln(w, indent+"Return:")
		if n.Value != nil {
			Fprint(w, n.Value, indent+"  ")
		} else {
			fmt.Fprintln(w, indent+"  (empty)")
		}

	case *BlockStatement:
		fmt.Fprintln(w, indent+"{")
		for _, stmt := range n.Statements {
			Fprint(w, stmt, indent+"  ")
		}
		fmt.Fprintln(w, indent+"}")

	default:
		fmt.Fprintf(w, "%s<unknown node type: %T>\n", indent, n)
	}
}
