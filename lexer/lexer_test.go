/*
File    : meow-lang/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ScanTokens
// Input: source code
// ExpectedTokens: list of expected tokens (excluding the trailing EOF)
type TestScanTokens struct {
	Input          string
	ExpectedTokens []Token
}

// TestLexer_ScanTokens tests the ScanTokens method of the Lexer
func TestLexer_ScanTokens(t *testing.T) {

	tests := []TestScanTokens{
		{
			Input: `purr 1 @ 2`,
			ExpectedTokens: []Token{
				NewToken(PURR, "purr"),
				NewToken(NUMBER, "1"),
				NewToken(PAW_PAW, "@"),
				NewToken(NUMBER, "2"),
			},
		},
		{
			Input: ` ( ) { } , @ % ~ ^ = ! `,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(COMMA, ","),
				NewToken(PAW_PAW, "@"),
				NewToken(SCRATCH, "%"),
				NewToken(PURR_PURR, "~"),
				NewToken(FEED, "^"),
				NewToken(EQUALS, "="),
				NewToken(NOT, "!"),
			},
		},
		{
			Input: `meow purr hiss grr grrr mrrr prrr mew and or true false nil`,
			ExpectedTokens: []Token{
				NewToken(MEOW, "meow"),
				NewToken(PURR, "purr"),
				NewToken(HISS, "hiss"),
				NewToken(GRR, "grr"),
				NewToken(GRRR, "grrr"),
				NewToken(MRRR, "mrrr"),
				NewToken(PRRR, "prrr"),
				NewToken(MEW, "mew"),
				NewToken(AND, "and"),
				NewToken(OR, "or"),
				NewToken(TRUE, "true"),
				NewToken(FALSE, "false"),
				NewToken(NIL, "nil"),
			},
		},
		{
			Input: `TAIL_UP TAIL_UP_UP TAIL_DOWN TAIL_DOWN_DOWN PSPSPS HISSS`,
			ExpectedTokens: []Token{
				NewToken(TAIL_UP, "TAIL_UP"),
				NewToken(TAIL_UP_UP, "TAIL_UP_UP"),
				NewToken(TAIL_DOWN, "TAIL_DOWN"),
				NewToken(TAIL_DOWN_DOWN, "TAIL_DOWN_DOWN"),
				NewToken(PSPSPS, "PSPSPS"),
				NewToken(HISSS, "HISSS"),
			},
		},
		{
			Input: `whiskers _tail __a19bcd_aa90 mewmew`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "whiskers"),
				NewToken(IDENTIFIER, "_tail"),
				NewToken(IDENTIFIER, "__a19bcd_aa90"),
				NewToken(IDENTIFIER, "mewmew"),
			},
		},
		{
			Input: `purr 1 # the cat ignores this
purr 2`,
			ExpectedTokens: []Token{
				NewToken(PURR, "purr"),
				NewToken(NUMBER, "1"),
				NewToken(NEWLINE, "\n"),
				NewToken(PURR, "purr"),
				NewToken(NUMBER, "2"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens, err := lex.ScanTokens()
		assert.NoError(t, err)

		// the scanner always terminates the stream with EOF
		assert.Equal(t, len(tt.ExpectedTokens)+1, len(tokens), "input: %s", tt.Input)
		assert.Equal(t, EOF, tokens[len(tokens)-1].Type)

		for i, expected := range tt.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "input: %s, token %d", tt.Input, i)
			assert.Equal(t, expected.Lexeme, tokens[i].Lexeme, "input: %s, token %d", tt.Input, i)
		}
	}
}

// TestLexer_NumberLiterals verifies the decoded float values of number tokens
func TestLexer_NumberLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"7", 7},
		{"123", 123},
		{"3.5", 3.5},
		{"0.25", 0.25},
		{"10.75", 10.75},
	}

	for _, tt := range tests {
		tokens, err := NewLexer(tt.input).ScanTokens()
		assert.NoError(t, err)
		assert.Equal(t, 2, len(tokens))
		assert.Equal(t, NUMBER, tokens[0].Type)
		assert.Equal(t, tt.expected, tokens[0].Literal)
	}
}

// TestLexer_TrailingDot verifies that a '.' without a following digit is
// not consumed as part of the number; the stray dot is then a lexical error
func TestLexer_TrailingDot(t *testing.T) {
	_, err := NewLexer(`meow x = 7.`).ScanTokens()
	assert.Error(t, err)

	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, 1, lexErr.Line)
	assert.Contains(t, lexErr.Detail, "Unexpected character")
}

// TestLexer_StringLiterals verifies string scanning, including multi-line
// strings and the absence of escape-sequence interpretation
func TestLexer_StringLiterals(t *testing.T) {
	tokens, err := NewLexer(`"soft kitty"`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "soft kitty", tokens[0].Literal)

	// backslash-n stays two characters, not a newline
	tokens, err = NewLexer(`"a\nb"`).ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, `a\nb`, tokens[0].Literal)

	// strings may span lines; the token carries the line of its opening
	// quote, and embedded newlines count toward the lines that follow
	tokens, err = NewLexer("\"warm\nkitty\"").ScanTokens()
	assert.NoError(t, err)
	assert.Equal(t, "warm\nkitty", tokens[0].Literal)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

// TestLexer_NewlineCollapsing verifies that runs of blank lines produce a
// single NEWLINE token and that leading blank lines produce none
func TestLexer_NewlineCollapsing(t *testing.T) {
	tokens, err := NewLexer("\n\npurr 1\n\n\npurr 2\n").ScanTokens()
	assert.NoError(t, err)

	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{PURR, NUMBER, NEWLINE, PURR, NUMBER, NEWLINE, EOF}, types)

	// the invariant: never two NEWLINE tokens in a row
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == NEWLINE {
			assert.NotEqual(t, NEWLINE, tokens[i-1].Type)
		}
	}
}

// TestLexer_LineNumbers verifies that tokens carry the 1-based line they
// begin on
func TestLexer_LineNumbers(t *testing.T) {
	tokens, err := NewLexer("purr 1\npurr 2\npurr 3").ScanTokens()
	assert.NoError(t, err)

	lines := map[string]int{}
	for _, tok := range tokens {
		if tok.Type == NUMBER {
			lines[tok.Lexeme] = tok.Line
		}
	}
	assert.Equal(t, map[string]int{"1": 1, "2": 2, "3": 3}, lines)
}

// TestLexer_UnterminatedString verifies the unterminated-string error
func TestLexer_UnterminatedString(t *testing.T) {
	_, err := NewLexer("purr \"no closing quote").ScanTokens()
	assert.Error(t, err)

	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, 1, lexErr.Line)
	assert.Contains(t, lexErr.Detail, "Unterminated string")
	assert.NotEmpty(t, lexErr.Phrase)
}

// TestLexer_UnexpectedCharacter verifies that characters outside the
// language's alphabet abort the scan with the offending line attached
func TestLexer_UnexpectedCharacter(t *testing.T) {
	_, err := NewLexer("purr 1\npurr $").ScanTokens()
	assert.Error(t, err)

	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, 2, lexErr.Line)
	assert.Contains(t, lexErr.Detail, "Unexpected character: $")
	// the user-facing message is one of the cat phrases, not the detail
	assert.Equal(t, lexErr.Phrase, lexErr.Error())
}
