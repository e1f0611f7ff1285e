// Package dispatch runs console input against a command tree.
//
// The command tree itself does no locking. A Dispatcher owns the tree after
// construction: registration takes the write lock, resolution the read lock,
// and handlers run with no lock held so they may register commands
// themselves.
package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/logging"
	"github.com/keshon/cix/internal/tree"
)

var (
	ErrNoMatch      = errors.New("unknown command")
	ErrNoHandler    = errors.New("command group has no handler")
	ErrRootIdentity = errors.New("root identity must not contain whitespace")
)

// GroupError is returned when input resolves to a node that only groups
// other commands. Callers usually print help for Branch.
type GroupError struct {
	Branch *console.Branch
	Args   string
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Branch.Address(), ErrNoHandler)
}

func (e *GroupError) Unwrap() error { return ErrNoHandler }

// Dispatcher resolves input lines to commands and runs them.
type Dispatcher struct {
	mu       sync.RWMutex
	root     *console.Branch
	index    *tree.Index[*console.Branch]
	aliases  map[string]string
	maxDepth int
	logger   *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = logging.OrNop(l) }
}

// WithAliases installs an alias table; see SetAlias.
func WithAliases(aliases map[string]string) Option {
	return func(d *Dispatcher) {
		for k, v := range aliases {
			d.aliases[normalize(k)] = normalize(v)
		}
	}
}

// WithMaxDepth bounds the depth of the command tree; 0 means unbounded.
func WithMaxDepth(n int) Option {
	return func(d *Dispatcher) { d.maxDepth = n }
}

// New takes ownership of root. It fails if the tree is cyclic or deeper
// than the configured maximum, or if the root identity could never be
// matched by space separated input.
func New(root *console.Branch, opts ...Option) (*Dispatcher, error) {
	if id := root.Identity(); strings.ContainsFunc(id, unicode.IsSpace) {
		return nil, fmt.Errorf("%w: %q", ErrRootIdentity, id)
	}
	d := &Dispatcher{
		root:    root,
		aliases: map[string]string{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := tree.Validate(root, d.maxDepth); err != nil {
		return nil, fmt.Errorf("invalid command tree: %w", err)
	}
	d.index = tree.NewIndex(root)
	return d, nil
}

// Register runs fn with exclusive access to the root so it can add
// branches, then re-indexes the tree. If the result is invalid the children
// of every node are put back as they were before fn ran.
func (d *Dispatcher) Register(fn func(root *console.Branch)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	saved := snapshot(d.root)
	fn(d.root)
	if err := tree.Validate(d.root, d.maxDepth); err != nil {
		restore(saved)
		return fmt.Errorf("invalid command tree: %w", err)
	}
	if d.index.Refresh() {
		d.logger.Debug("command tree re-indexed", zap.Int("nodes", d.index.Len()))
	}
	return nil
}

// View runs fn with shared access to the root.
func (d *Dispatcher) View(fn func(root *console.Branch)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(d.root)
}

// Resolve finds the command for an input line without running it. The line
// does not repeat the root identity: for a root "cix", "service start web"
// resolves against "cix service start web". ok is false when nothing
// matches.
func (d *Dispatcher) Resolve(input string) (match *console.Branch, args string, ok bool) {
	match, _, args, ok = d.resolve(input)
	return match, args, ok
}

// resolve also returns the handler as seen under the lock, so a concurrent
// Register wrapping handlers cannot race with the call.
func (d *Dispatcher) resolve(input string) (*console.Branch, console.Handler, string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	line := d.expandAlias(normalize(input))
	if id := d.root.Identity(); id != "" {
		line = strings.TrimSpace(id + " " + line)
	} else {
		// children of an unnamed root are addressed "/child"
		line = " " + line
	}
	match, rest, ok := d.index.BestMatchWithRemaining(d.root.Query(line))
	if !ok {
		return nil, nil, console.Parameters(rest), false
	}
	return match, match.Handler, console.Parameters(rest), true
}

// Dispatch resolves input and runs the matched handler with the remaining
// arguments.
func (d *Dispatcher) Dispatch(input string) error {
	log := d.logger.With(zap.String("req", uuid.NewString()))

	match, handler, args, ok := d.resolve(input)
	if !ok {
		log.Warn("no command matched", zap.String("input", input))
		return fmt.Errorf("%w: %q", ErrNoMatch, normalize(input))
	}

	log = log.With(zap.String("path", match.Address().String()))
	if handler == nil {
		log.Debug("matched command group", zap.String("args", args))
		return &GroupError{Branch: match, Args: args}
	}

	log.Debug("dispatch", zap.String("input", input), zap.String("args", args))
	if err := handler(args); err != nil {
		log.Warn("command failed", zap.Error(err))
		return fmt.Errorf("%s: %w", match.Address(), err)
	}
	return nil
}

// snapshot records the children of every node reachable from root.
func snapshot(root *console.Branch) map[*console.Branch][]*console.Branch {
	saved := map[*console.Branch][]*console.Branch{}
	tree.Walk(root, func(b *console.Branch, _ int) bool {
		saved[b] = slices.Clone(b.SubBranches())
		return true
	})
	return saved
}

func restore(saved map[*console.Branch][]*console.Branch) {
	for b, children := range saved {
		b.SetSubBranches(children)
	}
}

// normalize collapses runs of whitespace into single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
