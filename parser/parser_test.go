/*
File    : meow-lang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/objects"
)

// parse is a test helper: lex the source and parse it, failing the test
// on lexical errors (parser tests are about syntax, not scanning).
func parse(t *testing.T, src string) (*Parser, []StatementNode) {
	t.Helper()
	tokens, err := lexer.NewLexer(src).ScanTokens()
	assert.NoError(t, err)
	par := NewParser(tokens)
	return par, par.Parse()
}

func TestParser_Parse_OneNumberExpression(t *testing.T) {

	par, stmts := parse(t, `12`)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(stmts))

	exprStmt, can := stmts[0].(*ExpressionStatementNode)
	assert.True(t, can)

	lit, can := exprStmt.Expr.(*LiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "12", lit.Literal())
	if num, ok := lit.Value.(*objects.Number); ok {
		assert.Equal(t, 12.0, num.Value)
	} else {
		t.Errorf("Expected objects.Number, got %T", lit.Value)
	}
}

func TestParser_Parse_Precedence(t *testing.T) {

	// multiplication binds tighter than addition
	par, stmts := parse(t, `1 @ 2 ~ 3`)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(stmts))

	expr := stmts[0].(*ExpressionStatementNode).Expr
	add, can := expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PAW_PAW, add.Operator.Type)

	mul, can := add.Right.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PURR_PURR, mul.Operator.Type)
	assert.Equal(t, "1 @ 2 ~ 3", expr.Literal())

	// grouping overrides precedence
	par, stmts = parse(t, `(1 @ 2) ~ 3`)
	assert.False(t, par.HasErrors())
	expr = stmts[0].(*ExpressionStatementNode).Expr
	mul, can = expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PURR_PURR, mul.Operator.Type)
	_, can = mul.Left.(*GroupingExpressionNode)
	assert.True(t, can)

	// comparison binds tighter than equality
	par, stmts = parse(t, `1 TAIL_DOWN 2 PSPSPS true`)
	assert.False(t, par.HasErrors())
	eq, can := stmts[0].(*ExpressionStatementNode).Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.PSPSPS, eq.Operator.Type)
	cmp, can := eq.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.TAIL_DOWN, cmp.Operator.Type)
}

func TestParser_Parse_LeftAssociativity(t *testing.T) {

	// 10 % 3 % 2 is (10 % 3) % 2
	par, stmts := parse(t, `10 % 3 % 2`)
	assert.False(t, par.HasErrors())

	outer, can := stmts[0].(*ExpressionStatementNode).Expr.(*BinaryExpressionNode)
	assert.True(t, can)
	inner, can := outer.Left.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "10", inner.Left.Literal())
	assert.Equal(t, "2", outer.Right.Literal())
}

func TestParser_Parse_UnaryExpressions(t *testing.T) {

	par, stmts := parse(t, `%%7`)
	assert.False(t, par.HasErrors())

	// a prefix %% is unary-unary
	outer, can := stmts[0].(*ExpressionStatementNode).Expr.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.SCRATCH, outer.Operator.Type)
	inner, can := outer.Right.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.SCRATCH, inner.Operator.Type)

	par, stmts = parse(t, `!!true`)
	assert.False(t, par.HasErrors())
	not, can := stmts[0].(*ExpressionStatementNode).Expr.(*UnaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.NOT, not.Operator.Type)
}

func TestParser_Parse_VarDeclaration(t *testing.T) {

	par, stmts := parse(t, "meow x = 5\nmeow y")
	assert.False(t, par.HasErrors())
	assert.Equal(t, 2, len(stmts))

	decl, can := stmts[0].(*VarStatementNode)
	assert.True(t, can)
	assert.Equal(t, "x", decl.Name.Lexeme)
	assert.NotNil(t, decl.Initializer)

	bare, can := stmts[1].(*VarStatementNode)
	assert.True(t, can)
	assert.Equal(t, "y", bare.Name.Lexeme)
	assert.Nil(t, bare.Initializer)
}

func TestParser_Parse_AssignmentRightAssociative(t *testing.T) {

	par, stmts := parse(t, "a = b = 5")
	assert.False(t, par.HasErrors())

	outer, can := stmts[0].(*ExpressionStatementNode).Expr.(*AssignExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, can := outer.Value.(*AssignExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTarget(t *testing.T) {

	par, stmts := parse(t, "(a) = 5")
	assert.True(t, par.HasErrors())
	assert.Equal(t, 1, len(par.GetErrors()))
	assert.Equal(t, "Invalid assignment target.", par.GetErrors()[0].Detail)

	// the left expression is preserved as-is; recovery is not destructive
	assert.Equal(t, 1, len(stmts))
	exprStmt, can := stmts[0].(*ExpressionStatementNode)
	assert.True(t, can)
	_, can = exprStmt.Expr.(*GroupingExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {

	src := `prrr add(a, b) {
	mew a @ b
}`
	par, stmts := parse(t, src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(stmts))

	fn, can := stmts[0].(*FunctionStatementNode)
	assert.True(t, can)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Equal(t, 2, len(fn.Params))
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	assert.Equal(t, 1, len(fn.Body))

	ret, can := fn.Body[0].(*ReturnStatementNode)
	assert.True(t, can)
	assert.NotNil(t, ret.Value)
	assert.Equal(t, lexer.MEW, ret.Keyword.Type)
}

func TestParser_Parse_IfElseStatement(t *testing.T) {

	src := `grr x TAIL_UP 0 {
	purr "up"
} grrr {
	purr "down"
}`
	par, stmts := parse(t, src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(stmts))

	ifStmt, can := stmts[0].(*IfStatementNode)
	assert.True(t, can)
	assert.NotNil(t, ifStmt.ElseBlock)
	assert.Equal(t, 1, len(ifStmt.ThenBlock.Statements))
	assert.Equal(t, 1, len(ifStmt.ElseBlock.Statements))

	cond, can := ifStmt.Condition.(*BinaryExpressionNode)
	assert.True(t, can)
	assert.Equal(t, lexer.TAIL_UP, cond.Operator.Type)
}

func TestParser_Parse_WhileStatement(t *testing.T) {

	src := `mrrr i TAIL_DOWN 3 {
	i = i @ 1
}`
	par, stmts := parse(t, src)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(stmts))

	while, can := stmts[0].(*WhileStatementNode)
	assert.True(t, can)
	assert.Equal(t, lexer.MRRR, while.Keyword.Type)
	assert.Equal(t, 1, while.Keyword.Line)
	assert.Equal(t, 1, len(while.Body.Statements))
}

func TestParser_Parse_CallExpressions(t *testing.T) {

	par, stmts := parse(t, `add(1, 2)(3)`)
	assert.False(t, par.HasErrors())

	outer, can := stmts[0].(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 1, len(outer.Arguments))

	inner, can := outer.Callee.(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(inner.Arguments))
	_, can = inner.Callee.(*VariableExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_ReturnWithoutValue(t *testing.T) {

	src := `prrr quit() {
	mew
}`
	par, stmts := parse(t, src)
	assert.False(t, par.HasErrors())

	fn := stmts[0].(*FunctionStatementNode)
	ret, can := fn.Body[0].(*ReturnStatementNode)
	assert.True(t, can)
	assert.Nil(t, ret.Value)
}

func TestParser_Parse_NewlineWaivedAtEOF(t *testing.T) {

	// no trailing newline on the final statement
	par, stmts := parse(t, `purr 1`)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(stmts))
}

func TestParser_Parse_SynchronizationCollectsMultipleErrors(t *testing.T) {

	src := "meow = 5\npurr 1\nmeow = 6"
	par, stmts := parse(t, src)

	assert.True(t, par.HasErrors())
	assert.Equal(t, 2, len(par.GetErrors()))

	// the good statement between the two bad ones survives
	assert.Equal(t, 1, len(stmts))
	_, can := stmts[0].(*PrintStatementNode)
	assert.True(t, can)

	// structured fields stay attached to each error
	for _, parseErr := range par.GetErrors() {
		assert.Equal(t, "Expect variable name.", parseErr.Detail)
		assert.Equal(t, lexer.EQUALS, parseErr.Token.Type)
		assert.NotEmpty(t, parseErr.Phrase)
	}
}

func TestParser_Parse_ArgumentCap(t *testing.T) {

	var sb strings.Builder
	sb.WriteString("feed(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("1")
	}
	sb.WriteString(")")

	par, stmts := parse(t, sb.String())

	// the cap is a diagnostic, not a hard stop: parsing continues
	assert.True(t, par.HasErrors())
	assert.Equal(t, "Can't have more than 255 arguments.", par.GetErrors()[0].Detail)
	assert.Equal(t, 1, len(stmts))

	call := stmts[0].(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	assert.Equal(t, 256, len(call.Arguments))
}

func TestParser_Parse_SkipsBlankLines(t *testing.T) {

	par, stmts := parse(t, "\n\npurr 1\n\n\npurr 2\n")
	assert.False(t, par.HasErrors())
	assert.Equal(t, 2, len(stmts))
}
