package dispatch

import (
	"strings"

	"golang.org/x/exp/slices"
)

// SetAlias makes the leading words alias expand to expansion. Aliases are
// expanded once, never recursively.
func (d *Dispatcher) SetAlias(alias, expansion string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.aliases[normalize(alias)] = normalize(expansion)
}

// RemoveAlias deletes alias and reports whether it existed.
func (d *Dispatcher) RemoveAlias(alias string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := normalize(alias)
	_, ok := d.aliases[key]
	delete(d.aliases, key)
	return ok
}

// Aliases returns the alias names in sorted order with their expansions.
func (d *Dispatcher) Aliases() ([]string, map[string]string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.aliases))
	table := make(map[string]string, len(d.aliases))
	for k, v := range d.aliases {
		names = append(names, k)
		table[k] = v
	}
	slices.Sort(names)
	return names, table
}

// expandAlias replaces the longest run of leading words that is an alias.
// Callers hold the read lock.
func (d *Dispatcher) expandAlias(line string) string {
	if len(d.aliases) == 0 || line == "" {
		return line
	}
	words := strings.Split(line, " ")
	for i := len(words); i > 0; i-- {
		if exp, ok := d.aliases[strings.Join(words[:i], " ")]; ok {
			return strings.TrimSpace(exp + " " + strings.Join(words[i:], " "))
		}
	}
	return line
}
