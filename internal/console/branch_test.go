package console_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/cix/internal/address"
	"github.com/keshon/cix/internal/console"
)

func noop(string) error { return nil }

// serviceTree declares cix -> service -> {start, stop}.
func serviceTree() *console.Branch {
	return console.New("cix", func(root *console.Branch) {
		root.Branch("service", func(s *console.Branch) {
			s.Branch("start", nil, console.WithHandler(noop), console.WithUsage("service start <name>"))
			s.Branch("stop", nil, console.WithHandler(noop))
		}, console.WithBrief("Manage services"))
		root.Branch("help", nil, console.WithHandler(noop))
	})
}

func TestBestMatchFromCommandInput(t *testing.T) {
	root := serviceTree()

	m, ok := root.BestMatchFromCommandInput("cix service start myapp")
	require.True(t, ok)
	assert.Equal(t, "cix/service/start", m.Address().String())
	assert.Equal(t, "service start <name>", m.Usage)
}

func TestBestMatchFromCommandInputWithParameters(t *testing.T) {
	root := serviceTree()

	tests := []struct {
		input string
		path  string
		args  string
	}{
		{"cix service start myapp", "cix/service/start", "myapp"},
		{"cix service start my app --now", "cix/service/start", "my app --now"},
		{"cix service", "cix/service", ""},
		{"cix service restart web", "cix/service", "restart web"},
		{"cix", "cix", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, args, ok := root.BestMatchFromCommandInputWithParameters(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.path, m.Address().String())
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestNoMatchReturnsInputAsArgs(t *testing.T) {
	root := serviceTree()

	m, args, ok := root.BestMatchFromCommandInputWithParameters("unknown thing")
	assert.False(t, ok)
	assert.Nil(t, m)
	assert.Equal(t, "unknown thing", args)
}

func TestEmptyRootMatchesBareCommands(t *testing.T) {
	root := console.New("")
	root.Branch("service", func(s *console.Branch) {
		s.Branch("start", nil, console.WithHandler(noop))
	}, console.WithPath(address.New[*console.Branch]("service")))

	m, args, ok := root.BestMatchFromCommandInputWithParameters("service start myapp")
	require.True(t, ok)
	assert.Equal(t, "service/start", m.Address().String())
	assert.Equal(t, "myapp", args)

	m, _, ok = root.BestMatchFromCommandInputWithParameters("unknown")
	require.True(t, ok)
	assert.Same(t, root, m)
}

func TestCustomDivider(t *testing.T) {
	root := console.New("cix", console.WithDivider("."))
	start := root.Branch("service", nil).Branch("start", nil, console.WithHandler(noop))
	assert.Equal(t, "cix.service.start", start.Address().String())

	m, args, ok := root.BestMatchFromCommandInputWithParameters("cix service start a b")
	require.True(t, ok)
	assert.Same(t, start, m)
	assert.Equal(t, "a b", args)
}

func TestBranchDerivesAddressAndAppends(t *testing.T) {
	root := console.New("root")
	x := root.Branch("x", nil)

	assert.Equal(t, "root/x", x.Address().String())
	assert.Equal(t, "x", x.Identity())
	assert.False(t, x.HasHandler())
	assert.Equal(t, []*console.Branch{x}, root.SubBranches())
}

func TestCommandsAndChildren(t *testing.T) {
	root := serviceTree()

	var lines []string
	for _, c := range root.Commands() {
		lines = append(lines, c.CommandLine(root))
	}
	assert.Equal(t, []string{"help", "service start", "service stop"}, lines)

	var names []string
	for _, c := range root.Children() {
		names = append(names, c.Identity())
	}
	assert.Equal(t, []string{"help", "service"}, names)
}

func TestMiddlewareOrder(t *testing.T) {
	var calls []string
	tag := func(name string) console.Middleware {
		return func(b *console.Branch, next console.Handler) console.Handler {
			return func(args string) error {
				calls = append(calls, name+":"+b.Identity())
				return next(args)
			}
		}
	}

	root := console.New("cix")
	echo := root.Branch("echo", nil, console.WithHandler(func(args string) error {
		calls = append(calls, "run:"+args)
		return nil
	}, tag("inner"), tag("outer")))

	require.NoError(t, echo.Handler("hi"))
	assert.Equal(t, []string{"outer:echo", "inner:echo", "run:hi"}, calls)
}

func TestApplyAllSkipsGroups(t *testing.T) {
	root := serviceTree()
	sentinel := errors.New("blocked")
	root.ApplyAll(func(b *console.Branch, next console.Handler) console.Handler {
		return func(string) error { return sentinel }
	})

	service, ok := root.BestMatchFromCommandInput("cix service")
	require.True(t, ok)
	assert.False(t, service.HasHandler())

	start, ok := root.BestMatchFromCommandInput("cix service start")
	require.True(t, ok)
	assert.ErrorIs(t, start.Handler(""), sentinel)
}
