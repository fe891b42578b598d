/*
File    : meow-lang/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/meow-lang/objects"

// IsError reports whether the given object is a runtime error value.
// Evaluation handlers call this after every sub-evaluation so errors
// short-circuit the surrounding construct.
func IsError(obj objects.MeowObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}

// isTruthy interprets a value as a boolean in conditional positions:
// nil is false, a boolean is itself, a number is true unless it is zero,
// and everything else (strings, functions) is true.
func isTruthy(obj objects.MeowObject) bool {
	switch obj := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return obj.Value
	case *objects.Number:
		return obj.Value != 0
	default:
		return true
	}
}

// isEqual implements structural equality for PSPSPS and HISSS:
// nil equals only nil; values of different kinds are never equal (a
// boolean is never a number); values of the same kind compare by content.
// Functions compare by identity.
func isEqual(a, b objects.MeowObject) bool {
	if a.GetType() == objects.NilType && b.GetType() == objects.NilType {
		return true
	}
	if a.GetType() == objects.NilType || b.GetType() == objects.NilType {
		return false
	}
	if a.GetType() != b.GetType() {
		return false
	}

	switch a := a.(type) {
	case *objects.Number:
		return a.Value == b.(*objects.Number).Value
	case *objects.String:
		return a.Value == b.(*objects.String).Value
	case *objects.Boolean:
		return a.Value == b.(*objects.Boolean).Value
	default:
		// Functions and any future reference kinds compare by identity
		return a == b
	}
}

// numberOperands extracts the float values of two operands when both are
// numbers. The third result reports whether the extraction succeeded.
func numberOperands(left, right objects.MeowObject) (float64, float64, bool) {
	leftNum, ok := left.(*objects.Number)
	if !ok {
		return 0, 0, false
	}
	rightNum, ok := right.(*objects.Number)
	if !ok {
		return 0, 0, false
	}
	return leftNum.Value, rightNum.Value, true
}

// stringOperands extracts the string values of two operands when both are
// strings. The third result reports whether the extraction succeeded.
func stringOperands(left, right objects.MeowObject) (string, string, bool) {
	leftStr, ok := left.(*objects.String)
	if !ok {
		return "", "", false
	}
	rightStr, ok := right.(*objects.String)
	if !ok {
		return "", "", false
	}
	return leftStr.Value, rightStr.Value, true
}
