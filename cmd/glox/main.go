// Command glox is the Lox interpreter's CLI entry point: with no
// arguments it starts an interactive REPL, with one argument it runs that
// script file, and with more than one it prints a usage message and exits
// with status 64, matching spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/lisale0/Lox/internal/driver"
)

func main() {
	args := os.Args[1:]
	debug := false

	filtered := args[:0]
	for _, a := range args {
		if a == "-debug" {
			debug = true
			continue
		}
		filtered = append(filtered, a)
	}
	args = filtered

	switch len(args) {
	case 0:
		if err := driver.RunPrompt(os.Stdout, debug); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case 1:
		os.Exit(driver.RunFile(args[0], debug))
	default:
		fmt.Println("Usage: lox [script]")
		os.Exit(64)
	}
}
