/*
File    : meow-lang/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/objects"
	"github.com/akashmaji946/meow-lang/parser"
	"github.com/akashmaji946/meow-lang/scope"
)

// Evaluator holds the state for evaluating Meow AST nodes: the scope chain
// and the output writer. It serves as the main execution engine for the
// Meow interpreter. Execution is strictly single-threaded and synchronous;
// the only effects are writes to Writer and mutations of the scopes.
type Evaluator struct {
	Globals *scope.Scope // The global (root) scope, owned by this evaluator
	Scp     *scope.Scope // Current scope for variable bindings and lexical scoping
	Writer  io.Writer    // Output writer for purr statements (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance with
// default configuration: a fresh global scope that is also the initial
// current scope, and stdout as the output writer.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Meow code
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Interpret(statements)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Writer:  os.Stdout, // Default to stdout
	}
}

// SetWriter configures the output destination for purr statements.
//
// This method allows redirecting program output to any io.Writer
// implementation. This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - Custom output handling: sending output to buffers, network streams, etc.
//
// Parameters:
//   - w: An io.Writer implementation that will receive purr output
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf) // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Interpret executes a parsed program: the list of top-level statements
// against the evaluator's scope chain. This is the top entry point used
// by the file driver and the REPL.
//
// A runtime error anywhere in the program aborts evaluation at the point
// of failure and is returned as the result. A mew that unwinds all the
// way to the top (a return outside any function call) is converted into a
// runtime error here rather than escaping as a bare signal.
//
// Parameters:
//   - stmts: The program's top-level statements, in source order
//
// Returns:
//   - objects.MeowObject: The value of the last statement, or an Error
func (e *Evaluator) Interpret(stmts []parser.StatementNode) objects.MeowObject {
	result := e.evalStatements(stmts)

	if returned, ok := result.(*objects.ReturnValue); ok {
		return e.createErrorAtLine(returned.Line, "Cannot return from top-level code.")
	}
	return result
}

// ExecuteBlock runs a statement list with scp as the current scope and
// restores the previous scope afterwards, on every exit path: normal
// completion, a ReturnValue on its way out, or a propagated error.
// This implements the function.Runtime interface, so function invocations
// can execute their bodies inside their own call scope.
//
// Parameters:
//   - stmts: The statements to execute
//   - scp: The scope to execute them in
//
// Returns:
//   - objects.MeowObject: The result of the last statement, a ReturnValue,
//     or an Error
func (e *Evaluator) ExecuteBlock(stmts []parser.StatementNode, scp *scope.Scope) objects.MeowObject {
	previous := e.Scp
	e.Scp = scp
	result := e.evalStatements(stmts)
	e.Scp = previous
	return result
}

// createError creates a runtime Error anchored at the given token's line.
//
// The format string and arguments follow fmt.Sprintf conventions; the
// resulting message is prefixed with the source line so every runtime
// diagnostic names the token that triggered it.
//
// Parameters:
//   - token: The token whose line anchors the diagnostic
//   - format: A format string following fmt.Sprintf conventions
//   - a: Variable arguments to be formatted into the error message
//
// Returns:
//   - *objects.Error: An Error object with the line-prefixed message
//
// Example usage:
//
//	return e.createError(op, "Division by zero.")
//	// Message: "Line 4: Division by zero."
func (e *Evaluator) createError(token lexer.Token, format string, a ...interface{}) *objects.Error {
	return e.createErrorAtLine(token.Line, format, a...)
}

// createErrorAtLine is createError for callers that only have a line
// number, not a token.
func (e *Evaluator) createErrorAtLine(line int, format string, a ...interface{}) *objects.Error {
	msg := fmt.Sprintf(format, a...)
	return &objects.Error{
		Message: fmt.Sprintf("Line %d: %s", line, msg),
		Line:    line,
	}
}
