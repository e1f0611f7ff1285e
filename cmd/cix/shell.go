package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/keshon/cix/internal/command"
	"github.com/keshon/cix/internal/dispatch"
)

// runShell reads command lines from in until EOF or "exit". Command errors
// are printed and the loop continues.
func runShell(in io.Reader, out io.Writer, d *dispatch.Dispatcher, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := command.Execute(d, line, out); err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}
