package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

var (
	ErrUnknownService = errors.New("unknown service")
	ErrAlreadyRunning = errors.New("service already running")
	ErrNotRunning     = errors.New("service not running")
)

type State string

const (
	Stopped State = "stopped"
	Running State = "running"
)

// Service is a snapshot of one entry in a Table.
type Service struct {
	Name     string
	State    State
	Since    time.Time
	Restarts int
}

// Table tracks services by name. It is safe for concurrent use.
type Table struct {
	mu       sync.Mutex
	services map[string]*Service
	now      func() time.Time
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		services: make(map[string]*Service),
		now:      time.Now,
	}
}

// Start marks name as running, creating it on first use.
func (t *Table) Start(name string) (Service, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.services[name]
	if !ok {
		s = &Service{Name: name}
		t.services[name] = s
	}
	if s.State == Running {
		return *s, fmt.Errorf("%w: %s", ErrAlreadyRunning, name)
	}
	s.State = Running
	s.Since = t.now()
	return *s, nil
}

// Stop marks a running service as stopped.
func (t *Table) Stop(name string) (Service, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.services[name]
	if !ok {
		return Service{}, fmt.Errorf("%w: %s", ErrUnknownService, name)
	}
	if s.State != Running {
		return *s, fmt.Errorf("%w: %s", ErrNotRunning, name)
	}
	s.State = Stopped
	s.Since = t.now()
	return *s, nil
}

// Restart stops name if it is running and starts it again.
func (t *Table) Restart(name string) (Service, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.services[name]
	if !ok {
		return Service{}, fmt.Errorf("%w: %s", ErrUnknownService, name)
	}
	s.State = Running
	s.Since = t.now()
	s.Restarts++
	return *s, nil
}

// Get returns the service called name.
func (t *Table) Get(name string) (Service, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.services[name]
	if !ok {
		return Service{}, false
	}
	return *s, true
}

// List returns all services ordered by name.
func (t *Table) List() []Service {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Service, 0, len(t.services))
	for _, s := range t.services {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b Service) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}
