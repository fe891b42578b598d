/*
File    : meow-lang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements the syntactic analyzer for the Meow language.

The parser converts the token vector produced by the lexer into an Abstract
Syntax Tree (AST). Statements are parsed by classic recursive descent
following the grammar; expressions are parsed with a Pratt parser
(top-down operator precedence).

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- NEWLINE tokens as statement terminators (waived at end of file)
- Error collection (doesn't stop on first error)
- Panic-free recovery: after an error the parser synchronizes to the next
  statement boundary and keeps going, so one run can report several errors
- Parameter and argument lists capped at 255 entries

Every parse error is voiced as a cat phrase, the same way the lexer
complains; the offending token and the intended message stay attached to
the error value for diagnostic surfaces that want them.
*/
package parser

import (
	"github.com/akashmaji946/meow-lang/lexer"
)

// ParseError represents a single syntax error. The user-visible message is
// a cat phrase; Token and Detail carry the structured diagnostic.
type ParseError struct {
	Token  lexer.Token // The token the parser tripped over
	Detail string      // The intended human-readable message
	Phrase string      // The cat phrase actually shown to the user
}

// Error implements the error interface. Only the phrase is returned;
// the structured fields stay available on the value.
func (e *ParseError) Error() string {
	return e.Phrase
}

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse a Meow token vector
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Tokens []lexer.Token // The token vector being parsed (ends with EOF)
	Pos    int           // Index of the current unconsumed token

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and primaries
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators

	// Collect parsing errors instead of stopping at the first one
	// This allows reporting multiple errors in a single parse
	Errors []*ParseError
}

// NewParser creates and initializes a new Parser instance for a token
// vector. The vector is expected to end with an EOF token, the way
// lexer.ScanTokens produces it; a missing terminator is repaired quietly.
//
// Parameters:
//
//	tokens - The token vector to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to consume the tokens into a statement list.
func NewParser(tokens []lexer.Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != lexer.EOF {
		tokens = append(tokens, lexer.NewToken(lexer.EOF, ""))
	}

	par := &Parser{
		Tokens: tokens,
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function maps
// and the error list. The registrations below establish the expression
// grammar of the Meow language.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]*ParseError, 0)

	// Register prefix parsing functions
	// These handle tokens that can start an expression

	// Literals: true, false, nil, numbers, strings
	par.registerUnaryFuncs(par.parseLiteral, lexer.TRUE, lexer.FALSE, lexer.NIL, lexer.NUMBER, lexer.STRING)

	// Identifiers: variable and function names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupingExpression, lexer.LEFT_PAREN)

	// Unary operators: ! (not) and % (numeric negation)
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT, lexer.SCRATCH)

	// Register infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: @ % ~ ^
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PAW_PAW, lexer.SCRATCH, lexer.PURR_PURR, lexer.FEED)

	// Comparison operators: TAIL_UP TAIL_UP_UP TAIL_DOWN TAIL_DOWN_DOWN
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.TAIL_UP, lexer.TAIL_UP_UP, lexer.TAIL_DOWN, lexer.TAIL_DOWN_DOWN)

	// Equality operators: PSPSPS HISSS
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PSPSPS, lexer.HISSS)

	// Short-circuit logical operators: and, or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND, lexer.OR)

	// Assignment: =
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.EQUALS)

	// Call operator: postfix parentheses
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
}

// Parse is the main parsing function that converts the token vector into a
// list of top-level statements. NEWLINE tokens between declarations are
// skipped. When a declaration fails to parse, it is dropped and parsing
// resumes at the next statement boundary, so multiple syntax errors can
// surface in one run; check HasErrors() before evaluating the result.
//
// Returns:
//
//	A slice of the successfully parsed top-level statements
func (par *Parser) Parse() []StatementNode {
	statements := make([]StatementNode, 0)

	for !par.isAtEnd() {
		if par.match(lexer.NEWLINE) {
			continue
		}
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
			// Consume any trailing newlines
			for par.match(lexer.NEWLINE) {
			}
		}
	}
	return statements
}

// parseDeclaration parses one declaration: a function, a variable
// declaration, or a statement. On a parse error the parser synchronizes
// and nil is returned; the error has already been recorded.
func (par *Parser) parseDeclaration() StatementNode {
	var stmt StatementNode
	var err *ParseError

	switch {
	case par.match(lexer.PRRR):
		stmt, err = par.parseFunction()
	case par.match(lexer.MEOW):
		stmt, err = par.parseVarDeclaration()
	default:
		stmt, err = par.parseStatement()
	}

	if err != nil {
		par.synchronize()
		return nil
	}
	return stmt
}

// parseFunction parses a prrr declaration. The prrr keyword has already
// been consumed. Parameter lists are capped at 255 names; the cap is a
// diagnostic, not a hard stop, so parsing continues past it.
func (par *Parser) parseFunction() (StatementNode, *ParseError) {
	name, err := par.consume(lexer.IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	params := make([]lexer.Token, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				par.errorAt(par.peek(), "Can't have more than 255 parameters.")
			}

			param, err := par.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			if !par.match(lexer.COMMA) {
				break
			}
		}
	}

	if _, err := par.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}

	body, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionStatementNode{Name: name, Params: params, Body: body}, nil
}

// parseVarDeclaration parses a meow declaration. The meow keyword has
// already been consumed. The initializer is optional; a declaration
// without one binds the name to nil.
func (par *Parser) parseVarDeclaration() (StatementNode, *ParseError) {
	name, err := par.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ExpressionNode
	if par.match(lexer.EQUALS) {
		initializer, err = par.parseExpression(MINIMUM_PRIORITY)
		if err != nil {
			return nil, err
		}
	}

	if err := par.consumeTerminator("Expect 'newline' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStatementNode{Name: name, Initializer: initializer}, nil
}

// parseStatement parses a single statement: if, while, print, return,
// block, or expression statement.
func (par *Parser) parseStatement() (StatementNode, *ParseError) {
	switch {
	case par.match(lexer.GRR):
		return par.parseIfStatement()
	case par.match(lexer.MRRR):
		return par.parseWhileStatement()
	case par.match(lexer.PURR):
		return par.parsePrintStatement()
	case par.match(lexer.MEW):
		return par.parseReturnStatement()
	case par.match(lexer.LEFT_BRACE):
		block, err := par.parseBlock()
		if err != nil {
			return nil, err
		}
		return &BlockStatementNode{Statements: block}, nil
	}
	return par.parseExpressionStatement()
}

// parseIfStatement parses a grr conditional with an optional grrr branch.
// The grr keyword has already been consumed. The else keyword must follow
// the closing brace of the then-block directly.
func (par *Parser) parseIfStatement() (StatementNode, *ParseError) {
	condition, err := par.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expect '{' before if statement body."); err != nil {
		return nil, err
	}
	thenStmts, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *BlockStatementNode
	if par.match(lexer.GRRR) {
		if _, err := par.consume(lexer.LEFT_BRACE, "Expect '{' before else statement body."); err != nil {
			return nil, err
		}
		elseStmts, err := par.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBlock = &BlockStatementNode{Statements: elseStmts}
	}

	return &IfStatementNode{
		Condition: condition,
		ThenBlock: &BlockStatementNode{Statements: thenStmts},
		ElseBlock: elseBlock,
	}, nil
}

// parseWhileStatement parses a mrrr loop. The mrrr keyword has already
// been consumed; its token is kept on the node for runtime diagnostics.
func (par *Parser) parseWhileStatement() (StatementNode, *ParseError) {
	keyword := par.previous()

	condition, err := par.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expect '{' before while loop body."); err != nil {
		return nil, err
	}
	body, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	return &WhileStatementNode{
		Keyword:   keyword,
		Condition: condition,
		Body:      &BlockStatementNode{Statements: body},
	}, nil
}

// parsePrintStatement parses a purr statement. The purr keyword has
// already been consumed.
func (par *Parser) parsePrintStatement() (StatementNode, *ParseError) {
	value, err := par.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}
	if err := par.consumeTerminator("Expect 'newline' after value."); err != nil {
		return nil, err
	}
	return &PrintStatementNode{Expr: value}, nil
}

// parseReturnStatement parses a mew statement. The mew keyword has already
// been consumed. The operand is optional; a bare mew returns nil.
func (par *Parser) parseReturnStatement() (StatementNode, *ParseError) {
	keyword := par.previous()

	var value ExpressionNode
	if !par.check(lexer.NEWLINE) && !par.isAtEnd() {
		var err *ParseError
		value, err = par.parseExpression(MINIMUM_PRIORITY)
		if err != nil {
			return nil, err
		}
	}

	if err := par.consumeTerminator("Expect 'newline' after return value."); err != nil {
		return nil, err
	}
	return &ReturnStatementNode{Keyword: keyword, Value: value}, nil
}

// parseExpressionStatement parses an expression evaluated for its side
// effects, terminated by a newline (waived at end of file).
func (par *Parser) parseExpressionStatement() (StatementNode, *ParseError) {
	expr, err := par.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}
	if err := par.consumeTerminator("Expect 'newline' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStatementNode{Expr: expr}, nil
}

// parseBlock parses the statements of a brace-delimited block up to and
// including the closing brace. The opening brace has already been
// consumed. A failed declaration inside the block has already recovered,
// so the block keeps collecting the statements that do parse.
func (par *Parser) parseBlock() ([]StatementNode, *ParseError) {
	statements := make([]StatementNode, 0)

	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		if par.match(lexer.NEWLINE) {
			continue
		}
		stmt := par.parseDeclaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	if _, err := par.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// synchronize discards tokens until a likely statement boundary: just past
// a NEWLINE, or right before a statement-starting keyword. This lets the
// parser report several independent errors in one run instead of
// cascading from the first one.
func (par *Parser) synchronize() {
	par.advance()

	for !par.isAtEnd() {
		if par.previous().Type == lexer.NEWLINE {
			return
		}

		switch par.peek().Type {
		case lexer.MEOW, lexer.PURR, lexer.GRR, lexer.GRRR, lexer.MRRR, lexer.PRRR, lexer.MEW:
			return
		}

		par.advance()
	}
}

// HasErrors returns true if there are parsing errors.
// This should be checked after Parse to decide whether to evaluate.
//
// Returns:
//
//	true if there are any errors, false if parsing was successful
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
// This allows the caller to display all errors to the user.
//
// Returns:
//
//	A slice of the recorded parse errors, in source order
func (par *Parser) GetErrors() []*ParseError {
	return par.Errors
}

// errorAt records a parse error at the given token and returns it.
// The parser collects errors instead of stopping, allowing it to report
// multiple errors in a single parse.
//
// Parameters:
//
//	token  - The token the parser tripped over
//	detail - The intended human-readable message
func (par *Parser) errorAt(token lexer.Token, detail string) *ParseError {
	err := &ParseError{
		Token:  token,
		Detail: detail,
		Phrase: lexer.RandomCatSound(),
	}
	par.Errors = append(par.Errors, err)
	return err
}

// consume checks that the current token has the expected type; if so it is
// consumed and returned, otherwise a parse error is recorded and returned.
//
// Parameters:
//
//	expected - The token type we expect to see next
//	msg      - The diagnostic detail to record on mismatch
func (par *Parser) consume(expected lexer.TokenType, msg string) (lexer.Token, *ParseError) {
	if par.check(expected) {
		return par.advance(), nil
	}
	return lexer.Token{}, par.errorAt(par.peek(), msg)
}

// consumeTerminator consumes the NEWLINE that ends a statement. The
// terminator is waived when the parser is at end of file, so a final
// statement does not need a trailing newline.
func (par *Parser) consumeTerminator(msg string) *ParseError {
	if par.isAtEnd() {
		return nil
	}
	_, err := par.consume(lexer.NEWLINE, msg)
	return err
}

// match consumes the current token if it has one of the given types.
//
// Returns:
//
//	true if a token was consumed, false otherwise
func (par *Parser) match(tokenTypes ...lexer.TokenType) bool {
	for _, tokenType := range tokenTypes {
		if par.check(tokenType) {
			par.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given type.
// Always false at end of file.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	if par.isAtEnd() {
		return false
	}
	return par.peek().Type == tokenType
}

// advance consumes and returns the current token. At end of file the EOF
// token is returned without moving.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Pos++
	}
	return par.previous()
}

// isAtEnd reports whether the parser has reached the EOF token.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF
}

// peek returns the current unconsumed token without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Pos]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Pos-1]
}
