/*
File    : meow-lang/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Meow interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a Meow source file given on the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Meow
code. All diagnostics - lexical, syntactic, and runtime - are written to
stdout as "Error: ..." lines; that prefix is part of the observable
surface of the language.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/meow-lang/eval"
	"github.com/akashmaji946/meow-lang/lexer"
	"github.com/akashmaji946/meow-lang/parser"
	"github.com/akashmaji946/meow-lang/repl"
)

// VERSION represents the current version of the Meow interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "meow> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
  /\_/\      ___  ___ ___  ___  _ _ _
 ( o.o )    |   \/   | __|/ _ \| | | |
  > ^ <     | |\  /| | _|| (_) | V V |
 meow-lang  |_| \/ |_|___|\___/ \_^_/
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// main is the entry point of the Meow interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	meow              - Start in REPL (interactive) mode
//	meow <script>     - Execute the specified Meow source file
//
// Anything beyond one argument prints the usage message and exits with
// code 64 (the classic EX_USAGE convention).
func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: meow [script]")
		os.Exit(64)
	}

	if len(os.Args) == 2 {
		runFile(os.Args[1])
		return
	}

	// REPL mode: start the interactive interpreter
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdout)
}

// runFile reads and executes a Meow source file:
// 1. Read the file from disk (UTF-8)
// 2. Run the complete pipeline once over its contents
// 3. Exit non-zero if anything went wrong
//
// Parameters:
//
//	fileName - Path to the Meow source file to execute
//
// Error Handling:
//   - File read errors: "Error: ..." on stdout, exit code 66
//   - Lex/parse/runtime diagnostics: reported by runSource, exit code 1
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Printf("Error: Could not read file '%s': %v\n", fileName, err)
		os.Exit(66)
	}

	if ok := runSource(string(fileContent), os.Stdout); !ok {
		os.Exit(1)
	}
}

// runSource runs a complete Meow program through the pipeline:
// source -> tokens -> statements -> effects on the writer.
//
// The phases halt each other in order: a lexical error aborts before
// parsing, any parse error aborts before evaluation (after all collected
// errors are reported), and a runtime error aborts evaluation at the
// point of failure. Every diagnostic is one "Error: ..." line on the
// writer.
//
// Parameters:
//
//	source - The Meow source code as a string
//	out    - Destination for purr output and diagnostics
//
// Returns:
//
//	true if the program ran to completion without any diagnostic
func runSource(source string, out io.Writer) bool {
	tokens, err := lexer.NewLexer(source).ScanTokens()
	if err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		return false
	}

	par := parser.NewParser(tokens)
	statements := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			fmt.Fprintf(out, "Error: %s\n", parseErr)
		}
		return false
	}
	if len(statements) == 0 {
		return true
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(out)

	result := evaluator.Interpret(statements)
	if eval.IsError(result) {
		fmt.Fprintf(out, "Error: %s\n", result.ToString())
		return false
	}
	return true
}
