// Package clierror renders a formula error with source context — the line
// of formula text, a caret under the offending offset, and the message —
// for the error output of the repl, parse and eval commands. It is shell
// decoration only:
// the message string it wraps is exactly what the core (lexer, parser,
// evaluator) produced, and rendering never feeds back into value_map.
package clierror

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormulaError pairs a core error message with the formula text it came
// from and the byte/token offset recovered from the message, so the CLI
// can point at the exact spot that failed.
type FormulaError struct {
	Message string
	Source  string // the formula text, without the leading "="
	Offset  int    // -1 if no offset could be recovered from Message
}

// offsetPattern recovers the trailing numeric offset our lex/parse errors
// embed, e.g. "Unexpected character 'x' at index 3" or "Missing Comma at 7".
var offsetPattern = regexp.MustCompile(`(?:at index |at )(\d+)`)

// New wraps a core error message with the formula source it was raised
// against, recovering a caret position when the message carries one.
func New(message, source string) *FormulaError {
	offset := -1
	if m := offsetPattern.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			offset = n
		}
	}
	return &FormulaError{Message: message, Source: source, Offset: offset}
}

// Error implements the error interface with the uncolored rendering.
func (e *FormulaError) Error() string {
	return e.Format(false)
}

// Format renders the formula line, a caret under Offset (when known), and
// the message. With color set, the caret and message are ANSI-highlighted.
func (e *FormulaError) Format(color bool) string {
	var sb strings.Builder

	if e.Source != "" {
		sb.WriteString(fmt.Sprintf("=%s\n", e.Source))
		if e.Offset >= 0 && e.Offset <= len(e.Source) {
			sb.WriteString(strings.Repeat(" ", e.Offset+1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}
