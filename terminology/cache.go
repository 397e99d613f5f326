package terminology

import (
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"

	pv "github.com/careproc/validator"
)

// Cache is a concurrency-safe mapping from vocabulary system to its set
// of known codes. Registration is merge-only: registering a system twice
// unions the code sets. Entries are never removed except by Reset.
type Cache struct {
	mu      sync.RWMutex
	systems map[string]map[string]struct{}
}

// NewCache creates a cache pre-seeded with the built-in vocabularies.
func NewCache() *Cache {
	c := &Cache{
		systems: make(map[string]map[string]struct{}),
	}
	c.registerBuiltins()
	return c
}

// Register unions codes into the set for system, creating the entry if
// absent. Safe under concurrent calls; the merge is atomic per system.
func (c *Cache) Register(system string, codes ...string) {
	if system == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.systems[system]
	if !ok {
		set = make(map[string]struct{}, len(codes))
		c.systems[system] = set
	}
	for _, code := range codes {
		if code != "" {
			set[code] = struct{}{}
		}
	}
}

// IsUnknown reports whether code is not a known member of system.
//
// A blank code is never unknown, and neither is any code of an
// unregistered system: the cache cannot judge vocabularies it has not
// seen. The reserved message-name system is the exception; message
// names are authored per plugin, so a code of that system is considered
// known iff it starts with an uppercase letter. The heuristic is a
// documented approximation and deliberately not a strict check.
func (c *Cache) IsUnknown(system, code string) bool {
	if code == "" {
		return false
	}
	if system == pv.SystemMessageNames {
		r, _ := utf8.DecodeRuneInString(code)
		return !unicode.IsUpper(r)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	set, ok := c.systems[system]
	if !ok {
		return false
	}
	_, known := set[code]
	return !known
}

// Codes returns a sorted copy of the registered codes for system.
func (c *Cache) Codes(system string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set, ok := c.systems[system]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Systems returns the sorted registered system identifiers.
func (c *Cache) Systems() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.systems))
	for system := range c.systems {
		out = append(out, system)
	}
	sort.Strings(out)
	return out
}

// Reset discards everything and restores the pristine built-in state.
// Intended for test isolation only.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.systems = make(map[string]map[string]struct{})
	c.mu.Unlock()
	c.registerBuiltins()
}
