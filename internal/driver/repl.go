package driver

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const replPrompt = "lox> "

// RunPrompt starts an interactive REPL: each line is run through the same
// Session.Run pipeline as a file, with the error flags reset before every
// line so one bad line doesn't end the session (spec.md: "Interactive
// sessions reset both flags between inputs"). Line editing and history are
// provided by readline, following the REPL shape of the wider retrieval
// pack rather than the teacher's own bufio.Reader loop.
func RunPrompt(stdout io.Writer, debug bool) error {
	rl, err := readline.New(replPrompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	color.New(color.FgCyan).Fprintln(stdout, "Lox REPL. Ctrl-D to exit.")

	session := NewSession(stdout, os.Stderr, debug)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		session.Reporter.Reset()
		session.Run(line)
	}
}
