/*
File    : meow-lang/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/meow-lang/function"
	"github.com/akashmaji946/meow-lang/objects"
	"github.com/akashmaji946/meow-lang/parser"
	"github.com/akashmaji946/meow-lang/scope"
)

// evalStatements evaluates a sequence of statements in order, with early
// termination support.
//
// This method implements two important control-flow behaviors:
//  1. Error propagation: If any statement produces an error, evaluation
//     stops immediately and the error is returned
//  2. Return handling: If any statement produces a ReturnValue, evaluation
//     stops and the signal is propagated outward, to be caught by the
//     enclosing function invocation
//
// For normal execution the method continues through all statements and
// returns the result of the last one, or Nil for an empty list.
//
// Parameters:
//   - stmts: A slice of StatementNode objects to evaluate in sequence
//
// Returns:
//   - objects.MeowObject: The result of the last statement, a ReturnValue
//     if a mew was encountered, or an Error if any statement failed
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.MeowObject {
	var result objects.MeowObject = &objects.Nil{}
	for _, stmt := range stmts {
		result = e.Eval(stmt)

		if IsError(result) {
			return result
		}
		// Stop evaluation if we hit a return statement
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
	}
	return result
}

// evalVarStatement handles meow variable declarations.
//
// The initializer is evaluated if present, otherwise the variable starts
// as nil. The name is then bound in the current scope; a same-name binding
// already in this scope is silently replaced, and a binding in an outer
// scope is shadowed.
//
// Parameters:
//   - n: A VarStatementNode with the identifier and optional initializer
//
// Returns:
//   - objects.MeowObject: The bound value, or an Error from the initializer
//
// Example:
//
//	meow x = 10
//	meow y        # bound to nil
func (e *Evaluator) evalVarStatement(n *parser.VarStatementNode) objects.MeowObject {
	var value objects.MeowObject = &objects.Nil{}
	if n.Initializer != nil {
		value = e.Eval(n.Initializer)
		if IsError(value) {
			return value
		}
	}

	e.Scp.Bind(n.Name.Lexeme, value)
	return value
}

// evalPrintStatement handles purr statements: evaluate the operand,
// convert it to its display string, and write exactly one line to the
// evaluator's writer.
//
// Parameters:
//   - n: A PrintStatementNode with the expression to print
//
// Returns:
//   - objects.MeowObject: Nil on success, or an Error from the operand
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.MeowObject {
	value := e.Eval(n.Expr)
	if IsError(value) {
		return value
	}

	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return &objects.Nil{}
}

// evalBlockStatement evaluates a brace-delimited block in a fresh scope
// whose parent is the current scope. The previous scope is restored on
// every exit path - normal completion, return unwinding, or error.
//
// Parameters:
//   - n: A BlockStatementNode containing the statements to evaluate
//
// Returns:
//   - objects.MeowObject: The result of the last statement, a ReturnValue,
//     or an Error
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.MeowObject {
	return e.ExecuteBlock(n.Statements, scope.NewScope(e.Scp))
}

// evalIfStatement handles grr/grrr conditionals. The condition is tested
// for truthiness - any value is accepted here, unlike the stricter mrrr
// condition check.
//
// Parameters:
//   - n: An IfStatementNode with condition, then-block, and optional else
//
// Returns:
//   - objects.MeowObject: The result of the executed branch, or Nil when
//     the condition is falsy and there is no else branch
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.MeowObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(n.ThenBlock)
	}
	if n.ElseBlock != nil {
		return e.Eval(n.ElseBlock)
	}
	return &objects.Nil{}
}

// evalWhileStatement handles mrrr loops.
//
// The condition is re-evaluated before each iteration and must evaluate to
// a boolean or a number every time; strings, nil, and functions are
// rejected with a runtime error even though they have defined truthiness
// elsewhere. The asymmetry with grr is deliberate and preserved.
//
// A ReturnValue produced in the body stops the loop and keeps unwinding;
// an error aborts it.
//
// Parameters:
//   - n: A WhileStatementNode with the keyword token, condition, and body
//
// Returns:
//   - objects.MeowObject: Nil on normal completion, a ReturnValue on mew,
//     or an Error
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatementNode) objects.MeowObject {
	for {
		condition := e.Eval(n.Condition)
		if IsError(condition) {
			return condition
		}
		if condition.GetType() != objects.BooleanType && condition.GetType() != objects.NumberType {
			return e.createError(n.Keyword, "Condition must evaluate to a boolean or number.")
		}
		if !isTruthy(condition) {
			break
		}

		result := e.Eval(n.Body)
		if IsError(result) {
			return result
		}
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
	}
	return &objects.Nil{}
}

// evalFunctionStatement handles prrr declarations: construct a function
// value capturing the current scope as its closure, and bind it in the
// current scope under the declared name.
//
// The closure references the scope directly, not a copy, so later
// mutations of the defining scope are visible to the function and
// assignments made by the function are visible outside - the behavior the
// counter example in the tests depends on.
//
// Parameters:
//   - n: A FunctionStatementNode with the declaration
//
// Returns:
//   - objects.MeowObject: The created function value
func (e *Evaluator) evalFunctionStatement(n *parser.FunctionStatementNode) objects.MeowObject {
	fn := &function.Function{
		Declaration: n,
		Closure:     e.Scp,
	}
	e.Scp.Bind(n.Name.Lexeme, fn)
	return fn
}

// evalReturnStatement handles mew statements: evaluate the optional
// operand (nil if absent) and wrap it in a ReturnValue signal that unwinds
// through the enclosing blocks until a function invocation catches it.
//
// Parameters:
//   - n: A ReturnStatementNode with the keyword token and optional operand
//
// Returns:
//   - objects.MeowObject: A ReturnValue carrying the operand, or an Error
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.MeowObject {
	var value objects.MeowObject = &objects.Nil{}
	if n.Value != nil {
		value = e.Eval(n.Value)
		if IsError(value) {
			return value
		}
	}

	return &objects.ReturnValue{Value: value, Line: n.Keyword.Line}
}
