// Package render prints command listings, help pages and the command tree.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/tree"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	groupStyle = lipgloss.NewStyle().Italic(true)
)

// Commands lists every runnable command under root in a git-style layout.
func Commands(w io.Writer, root *console.Branch) {
	fmt.Fprint(w, "Available commands:\n\n")
	entries := make([][2]string, 0)
	for _, cmd := range root.Commands() {
		entries = append(entries, [2]string{cmd.CommandLine(root), cmd.Brief})
	}
	table(w, entries)
	fmt.Fprintln(w, "\nType 'help <command>' to see detailed information about a specific command.")
}

// Help prints the page for b: its usage, description and direct children.
func Help(w io.Writer, root, b *console.Branch) {
	line := b.CommandLine(root)
	if line == "" {
		line = root.Identity()
	}

	usage := b.Usage
	if usage == "" {
		usage = line
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Usage:"), usage)
	if b.Brief != "" {
		fmt.Fprintf(w, "\n%s\n", b.Brief)
	}
	if !b.HasHandler() {
		fmt.Fprintf(w, "\n%s\n", groupStyle.Render("This is a command group; pick one of its subcommands."))
	}

	children := b.Children()
	if len(children) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", labelStyle.Render("Subcommands:"))
	entries := make([][2]string, 0, len(children))
	for _, c := range children {
		entries = append(entries, [2]string{c.Identity(), c.Brief})
	}
	table(w, entries)
}

// Tree prints the command tree with one node per line, groups marked with
// a trailing divider.
func Tree(w io.Writer, root *console.Branch) {
	tree.Walk(root, func(b *console.Branch, depth int) bool {
		name := b.Identity()
		if name == "" {
			name = b.Address().String()
		}
		if !b.HasHandler() {
			name += b.Address().Divider()
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name)
		return true
	})
}

func table(w io.Writer, entries [][2]string) {
	longest := 0
	for _, e := range entries {
		if l := lipgloss.Width(e[0]); l > longest {
			longest = l
		}
	}
	for _, e := range entries {
		desc := e[1]
		if desc == "" {
			desc = "-"
		}
		padding := strings.Repeat(" ", longest-lipgloss.Width(e[0])+2)
		fmt.Fprintf(w, "  %s%s%s\n", nameStyle.Render(e[0]), padding, desc)
	}
}
