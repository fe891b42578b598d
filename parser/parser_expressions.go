/*
File    : meow-lang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/objects"
)

// parseExpression is the heart of the Pratt parser. It parses an
// expression whose operators all bind tighter than the given precedence.
//
// The algorithm:
// 1. Look up the prefix function for the current token and parse the
//    left-hand operand (literal, identifier, grouping, or unary)
// 2. While the next token is an infix operator binding tighter than
//    precedence, hand the accumulated left side to its infix function
//
// Left associativity falls out of infix functions recursing at their own
// precedence; assignment recurses one level lower to get right
// associativity.
//
// Parameters:
//
//	precedence - The minimum binding power an operator must exceed
//
// Returns:
//
//	The parsed expression, or a ParseError
func (par *Parser) parseExpression(precedence int) (ExpressionNode, *ParseError) {
	prefix := par.UnaryFuncs[par.peek().Type]
	if prefix == nil {
		return nil, par.errorAt(par.peek(), "Expect expression.")
	}

	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for precedence < getPrecedence(par.peek()) {
		infix := par.BinaryFuncs[par.peek().Type]
		if infix == nil {
			break
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseLiteral parses a literal token (true, false, nil, a number, or a
// string) into a LiteralExpressionNode carrying its runtime value.
func (par *Parser) parseLiteral() (ExpressionNode, *ParseError) {
	token := par.advance()

	var value objects.MeowObject
	switch token.Type {
	case lexer.TRUE:
		value = &objects.Boolean{Value: true}
	case lexer.FALSE:
		value = &objects.Boolean{Value: false}
	case lexer.NIL:
		value = &objects.Nil{}
	case lexer.NUMBER:
		value = &objects.Number{Value: token.Literal.(float64)}
	case lexer.STRING:
		value = &objects.String{Value: token.Literal.(string)}
	}

	return &LiteralExpressionNode{Token: token, Value: value}, nil
}

// parseIdentifierExpression parses a variable read.
func (par *Parser) parseIdentifierExpression() (ExpressionNode, *ParseError) {
	return &VariableExpressionNode{Name: par.advance()}, nil
}

// parseGroupingExpression parses a parenthesized expression: (expr).
func (par *Parser) parseGroupingExpression() (ExpressionNode, *ParseError) {
	par.advance() // consume '('

	expr, err := par.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return &GroupingExpressionNode{Expr: expr}, nil
}

// parseUnaryExpression parses a prefix operator application: !expr or
// %expr. The operand is parsed at prefix precedence, so unary operators
// nest (%%x is %(%x)) and bind looser only than the call operator.
func (par *Parser) parseUnaryExpression() (ExpressionNode, *ParseError) {
	operator := par.advance()

	right, err := par.parseExpression(PREFIX_PRIORITY)
	if err != nil {
		return nil, err
	}
	return &UnaryExpressionNode{Operator: operator, Right: right}, nil
}

// parseBinaryExpression parses the right operand of an arithmetic,
// comparison, or equality operator. Recursing at the operator's own
// precedence makes all of these left-associative.
func (par *Parser) parseBinaryExpression(left ExpressionNode) (ExpressionNode, *ParseError) {
	operator := par.advance()

	right, err := par.parseExpression(getPrecedence(operator))
	if err != nil {
		return nil, err
	}
	return &BinaryExpressionNode{Left: left, Operator: operator, Right: right}, nil
}

// parseLogicalExpression parses the right operand of a short-circuit
// and/or operator. The node kind is distinct from BinaryExpressionNode
// because evaluation may skip the right operand entirely.
func (par *Parser) parseLogicalExpression(left ExpressionNode) (ExpressionNode, *ParseError) {
	operator := par.advance()

	right, err := par.parseExpression(getPrecedence(operator))
	if err != nil {
		return nil, err
	}
	return &LogicalExpressionNode{Left: left, Operator: operator, Right: right}, nil
}

// parseAssignmentExpression parses the right side of an assignment.
// Assignment is right-associative, so the value is parsed one precedence
// level below ASSIGN_PRIORITY: a = b = 5 becomes a = (b = 5).
//
// Only a bare identifier is a valid assignment target. Anything else
// records a parse error but returns the left expression unchanged, which
// keeps recovery local: the '=' and the value have been consumed, and the
// surrounding statement parse continues normally.
func (par *Parser) parseAssignmentExpression(left ExpressionNode) (ExpressionNode, *ParseError) {
	equals := par.advance()

	value, err := par.parseExpression(ASSIGN_PRIORITY - 1)
	if err != nil {
		return nil, err
	}

	if variable, ok := left.(*VariableExpressionNode); ok {
		return &AssignExpressionNode{Name: variable.Name, Value: value}, nil
	}

	par.errorAt(equals, "Invalid assignment target.")
	return left, nil
}

// parseCallExpression parses a call's argument list. The callee has
// already been parsed; the current token is the opening parenthesis.
// Argument lists are capped at 255 entries; the cap is a diagnostic, not
// a hard stop. The closing ')' token is kept on the node so runtime call
// errors can name a line.
func (par *Parser) parseCallExpression(callee ExpressionNode) (ExpressionNode, *ParseError) {
	par.advance() // consume '('

	arguments := make([]ExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				par.errorAt(par.peek(), "Can't have more than 255 arguments.")
			}

			arg, err := par.parseExpression(MINIMUM_PRIORITY)
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)

			if !par.match(lexer.COMMA) {
				break
			}
		}
	}

	paren, err := par.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return &CallExpressionNode{Callee: callee, Paren: paren, Arguments: arguments}, nil
}
