// Package driver wires the scanner, parser, resolver, and interpreter into
// the two external interfaces spec.md describes: run-a-file and an
// interactive REPL. It owns error reporting and the had-error/
// had-runtime-error flags that decide the process exit code.
package driver

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lisale0/Lox/internal/interpreter"
	"github.com/lisale0/Lox/internal/parser"
	"github.com/lisale0/Lox/internal/resolver"
	"github.com/lisale0/Lox/internal/scanner"
)

// ErrorReporter prints static (scan/parse/resolve) errors to Stderr in
// spec.md's "[line N] Error: message" format and runtime errors as
// "message\n[line N]", tracking whether either class of error has occurred. A single Session reuses one
// ErrorReporter across REPL inputs, resetting the flags between lines.
type ErrorReporter struct {
	Stderr          io.Writer
	hadError        bool
	hadRuntimeError bool
}

// NewErrorReporter returns a reporter that writes to w.
func NewErrorReporter(w io.Writer) *ErrorReporter {
	return &ErrorReporter{Stderr: w}
}

// HadError reports whether a scan, parse, or resolve error has been seen
// since the last Reset.
func (r *ErrorReporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has been seen since the
// last Reset.
func (r *ErrorReporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both flags; the REPL calls this before evaluating each
// new line so a prior error doesn't poison later input.
func (r *ErrorReporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

func (r *ErrorReporter) report(line int, where, message string) {
	color.New(color.FgRed).Fprintf(r.Stderr, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// ScanErrors prints every scanner error collected for a source unit.
func (r *ErrorReporter) ScanErrors(errs []*scanner.Error) {
	for _, e := range errs {
		r.report(e.Line, "", e.Message)
	}
}

// ParseErrors prints every parser error, including the offending token's
// lexeme (or "end" at EOF) in the "where" clause, matching pylox's
// Lox.error(token, message) overload.
func (r *ErrorReporter) ParseErrors(errs []*parser.Error) {
	for _, e := range errs {
		r.reportToken(e.Token.Line, e.Token.Lexeme, e.Message)
	}
}

// ResolveErrors prints every resolver error the same way as parse errors;
// the resolver surfaces static errors (bad returns, duplicate locals)
// using the same token-anchored shape.
func (r *ErrorReporter) ResolveErrors(errs []*resolver.Error) {
	for _, e := range errs {
		r.reportToken(e.Token.Line, e.Token.Lexeme, e.Message)
	}
}

func (r *ErrorReporter) reportToken(line int, lexeme, message string) {
	where := fmt.Sprintf(" at '%s'", lexeme)
	if lexeme == "" {
		where = " at end"
	}
	r.report(line, where, message)
}

// RuntimeError implements interpreter.Reporter, printing the error and its
// line per spec.md and latching hadRuntimeError for the caller's exit code.
func (r *ErrorReporter) RuntimeError(err *interpreter.RuntimeError) {
	color.New(color.FgRed).Fprintln(r.Stderr, err.Error())
	r.hadRuntimeError = true
}
