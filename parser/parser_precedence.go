/*
File    : meow-lang/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/meow-lang/lexer"

// Operator precedence constants for the Pratt expression parser.
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Assignment (right-to-left associativity)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators (PSPSPS, HISSS)
// 5. Relational operators (TAIL_UP, TAIL_UP_UP, TAIL_DOWN, TAIL_DOWN_DOWN)
// 6. Additive operators (@, %)
// 7. Multiplicative operators (~, ^)
// 8. Unary/Prefix operators (!, %)
// 9. Call operator (postfix parentheses)
//
// Example: In "a @ b ~ c", multiplication has higher precedence than
// addition, so it's parsed as "a @ (b ~ c)" rather than "(a @ b) ~ c".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment operator (lowest precedence, right-to-left associativity)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical OR: or
	OR_PRIORITY = 20

	// Logical AND: and
	AND_PRIORITY = 30

	// Equality operators: PSPSPS (==), HISSS (!=)
	EQUALITY_PRIORITY = 40

	// Relational operators: TAIL_UP (>), TAIL_UP_UP (>=),
	// TAIL_DOWN (<), TAIL_DOWN_DOWN (<=)
	RELATIONAL_PRIORITY = 50

	// Additive operators: @ (add), % (subtract)
	TERM_PRIORITY = 60

	// Multiplicative operators: ~ (multiply), ^ (divide)
	FACTOR_PRIORITY = 70

	// Unary/Prefix operators: ! (not), % (negate)
	PREFIX_PRIORITY = 80

	// Call operator (highest precedence, postfix parentheses)
	// Example: counter()() calls the result of counter()
	CALL_PRIORITY = 90
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Parameters:
//
//	token - The token to get precedence for
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
//	Returns -1 for tokens that are not infix operators
func getPrecedence(token lexer.Token) int {
	switch token.Type {

	// Call operator - highest precedence for postfix
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	// Multiplicative: ~ ^
	case lexer.PURR_PURR, lexer.FEED:
		return FACTOR_PRIORITY

	// Additive: @ %
	case lexer.PAW_PAW, lexer.SCRATCH:
		return TERM_PRIORITY

	// Relational: TAIL_UP TAIL_UP_UP TAIL_DOWN TAIL_DOWN_DOWN
	case lexer.TAIL_UP, lexer.TAIL_UP_UP, lexer.TAIL_DOWN, lexer.TAIL_DOWN_DOWN:
		return RELATIONAL_PRIORITY

	// Equality: PSPSPS HISSS
	case lexer.PSPSPS, lexer.HISSS:
		return EQUALITY_PRIORITY

	// Logical AND: and
	case lexer.AND:
		return AND_PRIORITY

	// Logical OR: or
	case lexer.OR:
		return OR_PRIORITY

	// Assignment (lowest precedence)
	case lexer.EQUALS:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not an infix operator token
	}
}

// binaryParseFunction is a function type for parsing infix expressions.
// Infix expressions have an already-parsed left operand, an operator,
// and a right operand still to be parsed.
//
// Parameters:
//
//	ExpressionNode - The already-parsed left operand
//
// Returns:
//
//	ExpressionNode - The complete infix expression node
//	*ParseError    - A parse error, or nil on success
type binaryParseFunction func(ExpressionNode) (ExpressionNode, *ParseError)

// unaryParseFunction is a function type for parsing prefix expressions
// and primaries: literals, identifiers, groupings, and unary operators.
//
// Returns:
//
//	ExpressionNode - The parsed expression node
//	*ParseError    - A parse error, or nil on success
type unaryParseFunction func() (ExpressionNode, *ParseError)

// registerUnaryFuncs is a helper to register a prefix parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register an infix parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
