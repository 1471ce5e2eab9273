package ast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Node is the closed set of AST variants. Every traversal in the compiler
// (analyzer, folder, codegen, tree printer) switches exhaustively over the
// concrete types below; adding a variant means updating every switch.
type Node interface {
	node()
	String() string
	Children() []Child
}

// Child pairs a node with the role it plays in its parent, so external tree
// renderers can walk the AST without knowing the concrete variants.
type Child struct {
	Label string
	Node  Node
}

// --- Program ---

// Program is the ordered sequence of top-level statements.
type Program struct {
	Statements []Node
}

// String concatenates the string representations of the statements.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// --- Statements ---

// AssignStatement -> x = 1 or int x = 1. DeclaredType is non-empty only at
// a declaring assignment.
type AssignStatement struct {
	Name         string
	DeclaredType string // "int", "float", "string", or "" when reassigning
	Value        Node
}

func (as *AssignStatement) node() {}
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	if as.DeclaredType != "" {
		out.WriteString(as.DeclaredType + " ")
	}
	out.WriteString(as.Name + " = ")
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	return out.String()
}

func (as *AssignStatement) Children() []Child {
	return []Child{{Label: "value", Node: as.Value}}
}

// BlockStatement -> { statement1 statement2 }
type BlockStatement struct {
	Statements []Node
}

func (bs *BlockStatement) node() {}
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range bs.Statements {
		out.WriteString("\t" + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

func (bs *BlockStatement) Children() []Child {
	children := make([]Child, 0, len(bs.Statements))
	for _, s := range bs.Statements {
		children = append(children, Child{Node: s})
	}
	return children
}

// IfStatement -> if (condition) { ... } else { ... }
type IfStatement struct {
	Condition Node
	Then      *BlockStatement
	Else      *BlockStatement // nil when there is no else branch
}

func (is *IfStatement) node() {}
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Then.String())
	if is.Else != nil {
		out.WriteString(" else ")
		out.WriteString(is.Else.String())
	}
	return out.String()
}

func (is *IfStatement) Children() []Child {
	children := []Child{
		{Label: "condition", Node: is.Condition},
		{Label: "then", Node: is.Then},
	}
	if is.Else != nil {
		children = append(children, Child{Label: "else", Node: is.Else})
	}
	return children
}

// ForStatement -> for (init; condition; update) { body }
type ForStatement struct {
	Init      Node
	Condition Node
	Update    Node
	Body      *BlockStatement
}

func (fs *ForStatement) node() {}
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	out.WriteString(fs.Init.String())
	out.WriteString("; ")
	out.WriteString(fs.Condition.String())
	out.WriteString("; ")
	out.WriteString(fs.Update.String())
	out.WriteString(") ")
	out.WriteString(fs.Body.String())
	return out.String()
}

func (fs *ForStatement) Children() []Child {
	return []Child{
		{Label: "init", Node: fs.Init},
		{Label: "condition", Node: fs.Condition},
		{Label: "update", Node: fs.Update},
		{Label: "body", Node: fs.Body},
	}
}

// WhileStatement -> while (condition) { body }
type WhileStatement struct {
	Condition Node
	Body      *BlockStatement
}

func (ws *WhileStatement) node() {}
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	out.WriteString(ws.Condition.String())
	out.WriteString(") ")
	out.WriteString(ws.Body.String())
	return out.String()
}

func (ws *WhileStatement) Children() []Child {
	return []Child{
		{Label: "condition", Node: ws.Condition},
		{Label: "body", Node: ws.Body},
	}
}

// ReturnStatement -> return expression or return
type ReturnStatement struct {
	Value Node // nil for a bare return
}

func (rs *ReturnStatement) node() {}
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String()
	}
	return "return"
}

func (rs *ReturnStatement) Children() []Child {
	if rs.Value == nil {
		return nil
	}
	return []Child{{Label: "value", Node: rs.Value}}
}

// --- Expressions ---

// BinaryExpression -> (left op right)
type BinaryExpression struct {
	Left     Node
	Operator string // +, -, *, /, ==, !=, <, >, <=, >=
	Right    Node
}

func (be *BinaryExpression) node() {}
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

func (be *BinaryExpression) Children() []Child {
	return []Child{
		{Label: "left", Node: be.Left},
		{Label: "right", Node: be.Right},
	}
}

// Identifier -> varName
type Identifier struct {
	Name string
}

func (i *Identifier) node()             {}
func (i *Identifier) String() string    { return i.Name }
func (i *Identifier) Children() []Child { return nil }

// IntegerLiteral -> 123
type IntegerLiteral struct {
	Value int
}

func (il *IntegerLiteral) node()             {}
func (il *IntegerLiteral) String() string    { return strconv.Itoa(il.Value) }
func (il *IntegerLiteral) Children() []Child { return nil }

// FloatLiteral -> 1.5
type FloatLiteral struct {
	Value float64
}

func (fl *FloatLiteral) node()             {}
func (fl *FloatLiteral) String() string    { return strconv.FormatFloat(fl.Value, 'g', -1, 64) }
func (fl *FloatLiteral) Children() []Child { return nil }

// StringLiteral -> "hello"
type StringLiteral struct {
	Value string
}

func (sl *StringLiteral) node()             {}
func (sl *StringLiteral) String() string    { return fmt.Sprintf("%q", sl.Value) }
func (sl *StringLiteral) Children() []Child { return nil }
