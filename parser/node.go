/*
File    : meow-lang/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/objects"
)

// Node: base interface for all nodes of the AST
// Literal(): returns the source-like string representation of the node
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method distinguishing the statement sum
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// Expression(): marker method distinguishing the expression sum
type ExpressionNode interface {
	Node
	Expression()
}

// There can be many types of ExpressionNodes

// LiteralExpressionNode: represents a literal value in the source code
// Example: 42, 3.5, "whiskers", true, false, nil
type LiteralExpressionNode struct {
	Token lexer.Token        // The literal token from the source
	Value objects.MeowObject // The runtime value this literal denotes
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

// LiteralExpressionNode.Expression(): marker
func (node *LiteralExpressionNode) Expression() {

}

// VariableExpressionNode: represents a variable read
// Example: x, counter, __tail
type VariableExpressionNode struct {
	Name lexer.Token // The identifier token (carries the name and line)
}

// VariableExpressionNode.Literal(): string representation of the node
func (node *VariableExpressionNode) Literal() string {
	return node.Name.Lexeme
}

// VariableExpressionNode.Expression(): marker
func (node *VariableExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a unary operation expression with one operand
// Example: !flag, %x (numeric negation)
type UnaryExpressionNode struct {
	Operator lexer.Token    // The unary operator token (! or %)
	Right    ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operator.Lexeme + node.Right.Literal()
}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents a binary operation with two operands
// Covers arithmetic (@ % ~ ^), comparison (TAIL_*), and equality (PSPSPS/HISSS)
type BinaryExpressionNode struct {
	Left     ExpressionNode // Left operand expression
	Operator lexer.Token    // The binary operator token (kept for line info)
	Right    ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator.Lexeme + " " + node.Right.Literal()
}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {

}

// LogicalExpressionNode: represents a short-circuiting and/or expression
// Kept distinct from BinaryExpressionNode because the right operand may
// never be evaluated.
type LogicalExpressionNode struct {
	Left     ExpressionNode // Left operand expression
	Operator lexer.Token    // The and/or keyword token
	Right    ExpressionNode // Right operand expression
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator.Lexeme + " " + node.Right.Literal()
}

// LogicalExpressionNode.Expression(): marker
func (node *LogicalExpressionNode) Expression() {

}

// GroupingExpressionNode: represents an expression wrapped in parentheses
// Example: (1 @ 2) ~ 3
type GroupingExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// GroupingExpressionNode.Literal(): string representation of the node
func (node *GroupingExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// GroupingExpressionNode.Expression(): marker
func (node *GroupingExpressionNode) Expression() {

}

// AssignExpressionNode: represents a variable assignment expression
// Example: x = 10, count = count @ 1
// The target must be a bare identifier; anything else is a parse error.
type AssignExpressionNode struct {
	Name  lexer.Token    // The identifier token being assigned to
	Value ExpressionNode // The expression being assigned
}

// AssignExpressionNode.Literal(): string representation of the node
func (node *AssignExpressionNode) Literal() string {
	return node.Name.Lexeme + " = " + node.Value.Literal()
}

// AssignExpressionNode.Expression(): marker
func (node *AssignExpressionNode) Expression() {

}

// CallExpressionNode: represents a function call expression
// Example: add(2, 3), counter()()
type CallExpressionNode struct {
	Callee    ExpressionNode   // The expression producing the callable
	Paren     lexer.Token      // The closing ')' token (carries line info)
	Arguments []ExpressionNode // List of argument expressions
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := ""
	for i, arg := range node.Arguments {
		if i > 0 {
			args += ", "
		}
		args += arg.Literal()
	}
	return node.Callee.Literal() + "(" + args + ")"
}

// CallExpressionNode.Expression(): marker
func (node *CallExpressionNode) Expression() {

}

// There can be many types of StatementNodes

// ExpressionStatementNode: an expression evaluated for its side effects
// Example: add(2, 3) on a line of its own
type ExpressionStatementNode struct {
	Expr ExpressionNode // The expression to evaluate and discard
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal()
}

// ExpressionStatementNode.Statement(): marker
func (node *ExpressionStatementNode) Statement() {

}

// PrintStatementNode: represents a purr statement
// Example: purr 1 @ 2
type PrintStatementNode struct {
	Expr ExpressionNode // The expression whose value is printed
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "purr " + node.Expr.Literal()
}

// PrintStatementNode.Statement(): marker
func (node *PrintStatementNode) Statement() {

}

// VarStatementNode: represents a meow variable declaration
// Example: meow x = 10 or meow x (initialized to nil)
type VarStatementNode struct {
	Name        lexer.Token    // The variable identifier being declared
	Initializer ExpressionNode // The initialization expression, or nil
}

// VarStatementNode.Literal(): string representation of the node
func (node *VarStatementNode) Literal() string {
	if node.Initializer == nil {
		return "meow " + node.Name.Lexeme
	}
	return "meow " + node.Name.Lexeme + " = " + node.Initializer.Literal()
}

// VarStatementNode.Statement(): marker
func (node *VarStatementNode) Statement() {

}

// BlockStatementNode: represents a block of statements enclosed in braces
// A block introduces a fresh scope for the statements it contains.
type BlockStatementNode struct {
	Statements []StatementNode // List of statements in the block
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{ "
	for _, stmt := range node.Statements {
		str += stmt.Literal()
		str += "; "
	}
	str += "}"
	return str
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {

}

// IfStatementNode: represents a grr/grrr conditional statement
// Example: grr x TAIL_UP 0 { ... } grrr { ... }
type IfStatementNode struct {
	Condition ExpressionNode      // The condition expression to evaluate
	ThenBlock *BlockStatementNode // Block to execute if the condition is truthy
	ElseBlock *BlockStatementNode // Optional else block, nil when absent
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "grr " + node.Condition.Literal() + " " + node.ThenBlock.Literal()
	if node.ElseBlock != nil {
		res += " grrr " + node.ElseBlock.Literal()
	}
	return res
}

// IfStatementNode.Statement(): marker
func (node *IfStatementNode) Statement() {

}

// WhileStatementNode: represents a mrrr loop statement
// Example: mrrr i TAIL_DOWN 3 { ... }
// The keyword token is retained so runtime condition errors can name a line.
type WhileStatementNode struct {
	Keyword   lexer.Token         // The mrrr keyword token
	Condition ExpressionNode      // The loop condition, re-evaluated each iteration
	Body      *BlockStatementNode // The loop body
}

// WhileStatementNode.Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "mrrr " + node.Condition.Literal() + " " + node.Body.Literal()
}

// WhileStatementNode.Statement(): marker
func (node *WhileStatementNode) Statement() {

}

// FunctionStatementNode: represents a prrr function declaration
// Example: prrr add(a, b) { mew a @ b }
type FunctionStatementNode struct {
	Name   lexer.Token     // The function name identifier
	Params []lexer.Token   // Parameter identifier tokens, in order
	Body   []StatementNode // The statements of the function body
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Lexeme
	}
	body := &BlockStatementNode{Statements: node.Body}
	return "prrr " + node.Name.Lexeme + "(" + params + ") " + body.Literal()
}

// FunctionStatementNode.Statement(): marker
func (node *FunctionStatementNode) Statement() {

}

// ReturnStatementNode: represents a mew statement in a function
// Example: mew x @ 5 or a bare mew (returns nil)
type ReturnStatementNode struct {
	Keyword lexer.Token    // The mew keyword token (carries line info)
	Value   ExpressionNode // The expression to return, or nil
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "mew"
	}
	return "mew " + node.Value.Literal()
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {

}
