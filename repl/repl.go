/*
File    : meow-lang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Meow
interpreter. The REPL provides an interactive environment where users can:
- Enter Meow code line by line
- See purr output and diagnostics immediately
- Navigate command history using arrow keys
- Keep their bindings: one evaluator lives for the whole session, so a
  meow declaration on one line is visible on the next

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the lexer, parser, and evaluator to execute input.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/meow-lang/eval"
	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "meow> ")
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the interpreter
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the REPL starts to provide users with the
// Meow logo, version information, and basic usage instructions.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Meow! Every line is a complete program.")
	cyanColor.Fprintf(writer, "%s\n", "Press Ctrl+D to leave the cat alone.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates the session's evaluator
// 4. Reads lines until EOF or interrupt, evaluating each non-blank line
//    as a complete Meow program
//
// Diagnostics go to the writer as "Error: ..." lines and the loop simply
// continues; a syntax error on one line never ends the session.
//
// Parameters:
//
//	writer - Output destination for purr output and diagnostics
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// One evaluator for the whole session keeps bindings across lines
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt (Ctrl+D / Ctrl+C)
			fmt.Fprintln(writer, "Mew! Bye.")
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		r.executeLine(writer, line, evaluator)
	}
}

// executeLine runs one input line through the full pipeline.
//
// The line is scanned, parsed, and (when both phases succeed) evaluated
// against the session's evaluator. Each phase reports its diagnostics as
// "Error: ..." lines on the writer; parse errors can be several, one per
// recorded error. Results are not echoed - only purr prints.
//
// Parameters:
//
//	writer    - Output destination for diagnostics
//	line      - The user's input line to execute
//	evaluator - The session evaluator (maintains state across lines)
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	tokens, err := lexer.NewLexer(line).ScanTokens()
	if err != nil {
		redColor.Fprintf(writer, "Error: %s\n", err)
		return
	}

	par := parser.NewParser(tokens)
	statements := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(writer, "Error: %s\n", parseErr)
		}
		return
	}
	if len(statements) == 0 {
		return
	}

	result := evaluator.Interpret(statements)
	if eval.IsError(result) {
		redColor.Fprintf(writer, "Error: %s\n", result.ToString())
	}
}
