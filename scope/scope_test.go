/*
File    : meow-lang/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/meow-lang/objects"
)

// TestScope_LookUpWalksChain verifies that lookup searches from the
// innermost scope outward and that the nearest binding wins
func TestScope_LookUpWalksChain(t *testing.T) {
	global := NewScope(nil)
	inner := NewScope(global)

	global.Bind("x", &objects.Number{Value: 1})

	obj, ok := inner.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, obj.(*objects.Number).Value)

	// shadowing: the inner binding hides the outer one
	inner.Bind("x", &objects.Number{Value: 2})
	obj, _ = inner.LookUp("x")
	assert.Equal(t, 2.0, obj.(*objects.Number).Value)

	// the outer binding is untouched
	obj, _ = global.LookUp("x")
	assert.Equal(t, 1.0, obj.(*objects.Number).Value)

	_, ok = inner.LookUp("missing")
	assert.False(t, ok)
}

// TestScope_BindReplacesSilently verifies that redefinition in the same
// scope replaces the prior value without error
func TestScope_BindReplacesSilently(t *testing.T) {
	s := NewScope(nil)
	s.Bind("x", &objects.Number{Value: 1})
	s.Bind("x", &objects.String{Value: "cat"})

	obj, ok := s.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, objects.StringType, obj.GetType())
}

// TestScope_AssignTargetsDeclaringScope verifies that assignment updates
// the nearest scope that declared the name, which is what closures rely on
func TestScope_AssignTargetsDeclaringScope(t *testing.T) {
	global := NewScope(nil)
	middle := NewScope(global)
	inner := NewScope(middle)

	global.Bind("n", &objects.Number{Value: 0})

	ok := inner.Assign("n", &objects.Number{Value: 5})
	assert.True(t, ok)

	// the write landed in the global scope, not the inner one
	_, declaredInner := inner.Variables["n"]
	assert.False(t, declaredInner)
	obj, _ := global.LookUp("n")
	assert.Equal(t, 5.0, obj.(*objects.Number).Value)

	// assigning an undeclared name fails rather than binding
	assert.False(t, inner.Assign("missing", &objects.Nil{}))
	_, found := global.Variables["missing"]
	assert.False(t, found)
}
