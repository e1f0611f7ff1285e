package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/keshon/cix/internal/command"
	_ "github.com/keshon/cix/internal/command/alias"
	_ "github.com/keshon/cix/internal/command/echo"
	_ "github.com/keshon/cix/internal/command/help"
	_ "github.com/keshon/cix/internal/command/service"
	_ "github.com/keshon/cix/internal/command/tree"
	"github.com/keshon/cix/internal/config"
	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/dispatch"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	sections, err := commandSections(config.DefaultName)
	if err != nil {
		fmt.Printf("Failed to build command tree: %v\n", err)
		os.Exit(1)
	}

	data := map[string]string{
		"CommandSections": sections,
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}

// commandSections mounts every registered command and renders one markdown
// section per runnable command, in address order.
func commandSections(name string) (string, error) {
	root := command.NewRoot(name, io.Discard)
	d, err := dispatch.New(root)
	if err != nil {
		return "", err
	}
	if err := command.MountAll(command.Env{Dispatcher: d, Out: io.Discard}); err != nil {
		return "", err
	}

	var sb strings.Builder
	d.View(func(root *console.Branch) {
		for _, cmd := range root.Commands() {
			fmt.Fprintf(&sb, "### %s\n```\n%s\n%s\n```\n\n",
				cmd.CommandLine(root),
				cmd.Usage,
				cmd.Brief,
			)
		}
	})
	return sb.String(), nil
}
