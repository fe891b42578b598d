/*
File    : meow-lang/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/meow-lang/objects"
	"github.com/akashmaji946/meow-lang/parser"
	"github.com/akashmaji946/meow-lang/scope"
)

// Runtime is the surface a callable needs from the evaluator: the ability
// to execute a statement list inside a given scope. The eval package's
// Evaluator implements it. Keeping the interface here (instead of the
// evaluator type itself) breaks the import cycle between the function
// values and the engine that invokes them.
type Runtime interface {
	// ExecuteBlock runs the statements with scp as the current scope and
	// returns the resulting object: the last value, a ReturnValue on its
	// way out of a function body, or an Error.
	ExecuteBlock(stmts []parser.StatementNode, scp *scope.Scope) objects.MeowObject
}

// Callable is the uniform interface of every invocable Meow value.
// User-defined functions are the only variant the language produces
// today; a native function would simply be another implementation.
type Callable interface {
	objects.MeowObject
	// Arity returns the number of parameters the callable expects
	Arity() int
	// Invoke calls the callable with already-evaluated arguments.
	// The caller has verified len(args) == Arity().
	Invoke(rt Runtime, args []objects.MeowObject) objects.MeowObject
}

// Function represents a user-defined prrr function in Meow.
// It captures the function's declaration and the scope in force when the
// declaration was executed, which is what makes closures work.
//
// Fields:
//   - Declaration: The prrr AST node: name, parameter tokens, and body
//     statements. The body is shared with the AST, not copied.
//   - Closure: A pointer to the scope in which the function was declared.
//     Invocations chain their call scope onto this one, so the function
//     keeps seeing the bindings of its defining scope even after that
//     scope has otherwise exited.
type Function struct {
	Declaration *parser.FunctionStatementNode // The function's AST declaration
	Closure     *scope.Scope                  // Captured defining scope
}

// GetType returns the type identifier for this Function object.
// This implements the objects.MeowObject interface.
func (f *Function) GetType() objects.MeowType {
	return objects.FunctionType
}

// ToString returns the display representation of the function.
// The format is: "<prrr functionName>"
func (f *Function) ToString() string {
	return fmt.Sprintf("<prrr %s>", f.Declaration.Name.Lexeme)
}

// ToObject returns a detailed string representation of the function,
// including its name and parameter names. This is useful for debugging
// and object inspection.
//
// Example:
//
//	For prrr add(a, b): "<prrr[add(a, b)]>"
func (f *Function) ToObject() string {
	params := ""
	for i, param := range f.Declaration.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Lexeme
	}
	return fmt.Sprintf("<prrr[%s(%s)]>", f.Declaration.Name.Lexeme, params)
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Invoke executes the function body with the given argument values.
//
// A fresh scope is chained onto the function's captured closure scope -
// not onto the caller's current scope - and each parameter is bound
// positionally to its argument. The body then runs in that scope. A mew
// statement inside the body surfaces as a ReturnValue, which is unwrapped
// here: this invocation is the one frame that observes it. Falling off
// the end of the body yields nil.
//
// Parameters:
//   - rt: The runtime that executes the body statements
//   - args: The evaluated argument values, one per parameter
//
// Returns:
//   - objects.MeowObject: The returned value, nil on fall-through, or an
//     Error propagated out of the body
func (f *Function) Invoke(rt Runtime, args []objects.MeowObject) objects.MeowObject {
	callScope := scope.NewScope(f.Closure)
	for i, param := range f.Declaration.Params {
		callScope.Bind(param.Lexeme, args[i])
	}

	result := rt.ExecuteBlock(f.Declaration.Body, callScope)

	if returned, ok := result.(*objects.ReturnValue); ok {
		return returned.Value
	}
	if result.GetType() == objects.ErrorType {
		return result
	}
	return &objects.Nil{}
}
