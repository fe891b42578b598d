/*
File    : meow-lang/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/meow-lang/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block and each function invocation gets its own scope
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup and assignment, implementing standard lexical scoping rules. Scopes
// are plain garbage-collected values: a closure holding its defining scope is
// enough to keep the whole parent chain alive.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.MeowObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	functionScope := NewScope(globalScope) // Create function scope
//	blockScope := NewScope(functionScope)  // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.MeowObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical
// scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that variables in inner scopes shadow those in
// outer scopes and that the nearest binding always wins.
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.MeowObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.MeowObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a variable binding in the current scope.
//
// This is the operation behind meow declarations and parameter binding. It
// always targets the current scope only: an existing binding with the same
// name in this scope is silently replaced (redefinition is not an error in
// Meow), and a same-name binding in a parent scope is shadowed, not touched.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
//
// Example:
//
//	scope.Bind("x", &objects.Number{Value: 10})
//	scope.Bind("x", &objects.Number{Value: 20}) // replaces, no error
func (s *Scope) Bind(varName string, obj objects.MeowObject) {
	s.Variables[varName] = obj
}

// Assign updates an existing variable in the scope where it was originally
// defined.
//
// This method is crucial for proper closure behavior. Unlike Bind (which
// creates bindings in the current scope), Assign:
// 1. Searches for the variable in the current scope
// 2. If found, updates it in place
// 3. If not found, recursively searches parent scopes
// 4. Updates the variable in the nearest scope that declared it
//
// This ensures that closures can modify variables from their captured scope
// and that assignments never implicitly create new bindings.
//
// Parameters:
//   - varName: The name of the variable to assign to
//   - obj: The new value to assign
//
// Returns:
//   - bool: true if the variable was found and updated, false otherwise
func (s *Scope) Assign(varName string, obj objects.MeowObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}
