package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/render"
)

func noop(string) error { return nil }

func fixture() *console.Branch {
	return console.New("cix", func(root *console.Branch) {
		root.Branch("service", func(s *console.Branch) {
			s.Branch("start", nil, console.WithHandler(noop), console.WithBrief("Start a service"))
			s.Branch("stop", nil, console.WithHandler(noop))
		}, console.WithBrief("Manage services"))
		root.Branch("help", nil, console.WithHandler(noop), console.WithUsage("help [command]"))
	})
}

func TestCommands(t *testing.T) {
	var buf bytes.Buffer
	render.Commands(&buf, fixture())

	out := buf.String()
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "service start")
	assert.Contains(t, out, "Start a service")
	assert.Contains(t, out, "service stop")
	assert.NotContains(t, out, "Manage services", "groups are not runnable commands")
}

func TestHelp_Group(t *testing.T) {
	root := fixture()
	service, _ := root.BestMatchFromCommandInput("cix service")

	var buf bytes.Buffer
	render.Help(&buf, root, service)

	out := buf.String()
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Manage services")
	assert.Contains(t, out, "command group")
	assert.Contains(t, out, "Subcommands:")
	assert.Contains(t, out, "start")
	assert.Contains(t, out, "stop")
}

func TestHelp_Command(t *testing.T) {
	root := fixture()
	help, _ := root.BestMatchFromCommandInput("cix help")

	var buf bytes.Buffer
	render.Help(&buf, root, help)

	out := buf.String()
	assert.Contains(t, out, "help [command]")
	assert.NotContains(t, out, "Subcommands:")
	assert.NotContains(t, out, "command group")
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	render.Tree(&buf, fixture())

	assert.Equal(t, "cix/\n  service/\n    start\n    stop\n  help\n", buf.String())
}
