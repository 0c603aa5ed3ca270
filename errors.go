// errors.go: user-facing error wrapping and caret-snippet rendering
//
// Turns lexer diagnostics into readable error snippets with a caret
// pointing at the offending column:
//
//	LEXICAL ERROR at 2:8: integer literal out of 32-bit range
//
//	   1 | let x := 1;
//	   2 | let y := 99999999999;
//	     |          ^
//
// The snippet includes up to one line of context before and after the
// error, numbers the lines, and places the caret under the 1-based
// column. Line/Col on *LexError are the lexer's coordinates (1-based
// line, 0-based column); rendering converts the column to 1-based.
package alanlang

import (
	"fmt"
	"strings"
)

// LexError reports a lexical failure with its source position. The only
// failure the scanner produces is an out-of-range integer literal;
// unrecognized characters are reported in-stream as INVALID tokens
// instead.
type LexError struct {
	Line   int
	Col    int
	Lexeme string
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes *LexError and leaves
// other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (usually a
// file path) included in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	le, ok := err.(*LexError)
	if !ok {
		return err
	}
	// Lexer Col is 0-based; render as 1-based.
	return fmt.Errorf("%s", prettyErrorString(src, srcName, le.Line, le.Col+1, le.Msg))
}

// prettyErrorString builds a Python-like snippet with a header and a caret.
// It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorString(src, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "LEXICAL ERROR in %s at %d:%d: %s\n\n", name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "LEXICAL ERROR at %d:%d: %s\n\n", line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
