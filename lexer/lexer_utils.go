/*
File    : meow-lang/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isNumeric checks if the given byte is a decimal digit (0-9).
// Only ASCII digits are meaningful to the scanner.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
// Non-ASCII bytes have no defined behavior outside string literals.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter, false otherwise
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte is an ASCII letter or digit.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter or digit, false otherwise
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}
