package driver

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/lisale0/Lox/internal/interpreter"
	"github.com/lisale0/Lox/internal/parser"
	"github.com/lisale0/Lox/internal/resolver"
	"github.com/lisale0/Lox/internal/scanner"
)

// Session bundles everything one invocation of the driver needs: a single
// Interpreter (so top-level variables and functions persist across REPL
// lines, mirroring pylox's single long-lived interpreter), the reporter
// that tracks error state, and an optional debug logger.
type Session struct {
	Interp   *interpreter.Interpreter
	Reporter *ErrorReporter
	Log      hclog.Logger
}

// NewSession builds a Session with Out wired to stdout and Log either a
// real hclog logger (debug=true) or a discarding one, matching the
// -debug flag SPEC_FULL.md adds over pylox's original CLI.
func NewSession(stdout, stderr io.Writer, debug bool) *Session {
	level := hclog.Off
	if debug {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "glox",
		Level:  level,
		Output: stderr,
	})

	in := interpreter.New()
	in.Out = stdout
	rep := NewErrorReporter(stderr)
	in.Reporter = rep

	return &Session{Interp: in, Reporter: rep, Log: logger}
}

// Run scans, parses, resolves, and (if no static errors occurred)
// interprets source. It is the single pipeline shared by RunFile and the
// REPL, mirroring pylox/lox.py's Lox.run().
func (s *Session) Run(source string) {
	toks, scanErrs := scanner.Scan(source)
	s.Reporter.ScanErrors(scanErrs)
	s.Log.Debug("scanned", "tokens", len(toks), "errors", len(scanErrs))

	stmts, parseErrs := parser.Parse(toks)
	s.Reporter.ParseErrors(parseErrs)
	s.Log.Debug("parsed", "statements", len(stmts), "errors", len(parseErrs))

	if s.Reporter.HadError() {
		return
	}

	locals, resolveErrs := resolver.Resolve(stmts)
	s.Reporter.ResolveErrors(resolveErrs)
	s.Log.Debug("resolved", "locals", len(locals), "errors", len(resolveErrs))

	if s.Reporter.HadError() {
		return
	}

	s.Interp.SetLocals(locals)
	s.Interp.Interpret(stmts)
}

// RunFile executes the script at path and returns the process exit code
// spec.md assigns: 65 for a static error, 70 for an uncaught runtime
// error, 0 otherwise. A file that cannot be read yields 66.
func RunFile(path string, debug bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		return 66
	}
	s := NewSession(os.Stdout, os.Stderr, debug)
	s.Run(string(source))
	if s.Reporter.HadError() {
		return 65
	}
	if s.Reporter.HadRuntimeError() {
		return 70
	}
	return 0
}
