/*
File    : meow-lang/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/meow-lang/function"
	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/objects"
	"github.com/akashmaji946/meow-lang/parser"
)

// Eval is the main evaluation dispatcher that converts AST nodes into
// runtime objects.
//
// This method serves as the central hub of the evaluation process, routing
// each node type to its handler with a single type switch:
// - Literal expressions return their stored values directly
// - Unary/Binary/Logical expressions compute and return results
// - Control flow handles grr, mrrr, and mew statements
// - Function forms handle prrr declarations and call expressions
// - Variable forms handle meow declarations, reads, and assignments
//
// The evaluation process is recursive - complex expressions are broken
// down into sub-expressions that are evaluated in turn. Errors are
// ordinary values: they halt the surrounding construct and propagate up
// through the recursion.
//
// Parameters:
//   - n: The AST node to evaluate (any type implementing parser.Node)
//
// Returns:
//   - objects.MeowObject: The result of evaluating the node
func (e *Evaluator) Eval(n parser.Node) objects.MeowObject {
	switch n := n.(type) {
	case *parser.LiteralExpressionNode:
		return n.Value
	case *parser.GroupingExpressionNode:
		return e.Eval(n.Expr)
	case *parser.VariableExpressionNode:
		return e.evalVariableExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.AssignExpressionNode:
		return e.evalAssignExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.VarStatementNode:
		return e.evalVarStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(n)
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	default:
		return &objects.Nil{}
	}
}

// evalVariableExpression resolves a variable read by walking the scope
// chain from the current scope outward. An unresolved name is a runtime
// error naming the identifier's line.
func (e *Evaluator) evalVariableExpression(n *parser.VariableExpressionNode) objects.MeowObject {
	obj, ok := e.Scp.LookUp(n.Name.Lexeme)
	if !ok {
		return e.createError(n.Name, "Undefined variable '%s'.", n.Name.Lexeme)
	}
	return obj
}

// evalAssignExpression evaluates the right-hand side and assigns it to
// the nearest enclosing scope that declared the name. The assigned value
// is the value of the whole expression, so a = (b = 5) leaves both at 5.
// Assigning to a name that was never declared is a runtime error.
func (e *Evaluator) evalAssignExpression(n *parser.AssignExpressionNode) objects.MeowObject {
	value := e.Eval(n.Value)
	if IsError(value) {
		return value
	}

	if !e.Scp.Assign(n.Name.Lexeme, value) {
		return e.createError(n.Name, "Undefined variable '%s'.", n.Name.Lexeme)
	}
	return value
}

// evalUnaryExpression handles the two prefix operators:
// - !x returns the negated truthiness of x, for any x
// - %x requires a numeric operand and returns its negation
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.MeowObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operator.Type {
	case lexer.NOT:
		return &objects.Boolean{Value: !isTruthy(right)}
	case lexer.SCRATCH:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.createError(n.Operator, "Operand must be a number.")
		}
		return &objects.Number{Value: -num.Value}
	}
	return &objects.Nil{}
}

// evalLogicalExpression handles short-circuit and/or. The left operand
// decides: for or, a truthy left is the result; for and, a falsy left is
// the result. Either way the chosen operand's value is returned as-is,
// not coerced to a boolean, and the right operand is only evaluated when
// it is needed.
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.MeowObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}

	if n.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}

	return e.Eval(n.Right)
}

// evalBinaryExpression handles arithmetic, comparison, and equality
// operators. Both operands are evaluated first, left to right.
//
// Semantics:
//   - @ adds two numbers; if either side is a string, both sides are
//     converted to their display strings and concatenated
//   - % ~ ^ require numeric operands; division by zero is an error
//   - TAIL_* compare two strings lexicographically, otherwise require
//     numeric operands
//   - PSPSPS / HISSS are structural equality over kind and content
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.MeowObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	op := n.Operator

	switch op.Type {
	case lexer.PAW_PAW:
		if leftNum, rightNum, ok := numberOperands(left, right); ok {
			return &objects.Number{Value: leftNum + rightNum}
		}
		if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
			return &objects.String{Value: left.ToString() + right.ToString()}
		}
		return e.createError(op, "Operands must be two numbers or at least one string.")

	case lexer.SCRATCH:
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		return &objects.Number{Value: leftNum - rightNum}

	case lexer.PURR_PURR:
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		return &objects.Number{Value: leftNum * rightNum}

	case lexer.FEED:
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		if rightNum == 0 {
			return e.createError(op, "Division by zero.")
		}
		return &objects.Number{Value: leftNum / rightNum}

	case lexer.TAIL_UP:
		if leftStr, rightStr, ok := stringOperands(left, right); ok {
			return &objects.Boolean{Value: leftStr > rightStr}
		}
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		return &objects.Boolean{Value: leftNum > rightNum}

	case lexer.TAIL_UP_UP:
		if leftStr, rightStr, ok := stringOperands(left, right); ok {
			return &objects.Boolean{Value: leftStr >= rightStr}
		}
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		return &objects.Boolean{Value: leftNum >= rightNum}

	case lexer.TAIL_DOWN:
		if leftStr, rightStr, ok := stringOperands(left, right); ok {
			return &objects.Boolean{Value: leftStr < rightStr}
		}
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		return &objects.Boolean{Value: leftNum < rightNum}

	case lexer.TAIL_DOWN_DOWN:
		if leftStr, rightStr, ok := stringOperands(left, right); ok {
			return &objects.Boolean{Value: leftStr <= rightStr}
		}
		leftNum, rightNum, ok := numberOperands(left, right)
		if !ok {
			return e.createError(op, "Operands must be numbers.")
		}
		return &objects.Boolean{Value: leftNum <= rightNum}

	case lexer.PSPSPS:
		return &objects.Boolean{Value: isEqual(left, right)}

	case lexer.HISSS:
		return &objects.Boolean{Value: !isEqual(left, right)}
	}

	return &objects.Nil{}
}

// evalCallExpression handles a call: evaluate the callee, then the
// arguments left to right, require the callee to be callable and the
// argument count to match its arity, then invoke it. Call errors are
// anchored at the closing parenthesis of the call site.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.MeowObject {
	callee := e.Eval(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.MeowObject, 0, len(n.Arguments))
	for _, argument := range n.Arguments {
		arg := e.Eval(argument)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	callable, ok := callee.(function.Callable)
	if !ok {
		return e.createError(n.Paren, "Can only call functions.")
	}

	if len(args) != callable.Arity() {
		return e.createError(n.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	return callable.Invoke(e, args)
}
