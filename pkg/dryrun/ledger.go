package dryrun

import (
	"sort"
	"sync"
)

// ledger keeps the last Status recorded per absolute path
type ledger struct {
	mu      sync.RWMutex
	entries map[string]Status
}

func newLedger() *ledger {
	return &ledger{entries: make(map[string]Status)}
}

func (l *ledger) put(s Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[s.Path] = s
}

func (l *ledger) get(path string) (Status, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.entries[path]
	return s, ok
}

func (l *ledger) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// snapshot returns a copy the caller may modify freely
func (l *ledger) snapshot() map[string]Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]Status, len(l.entries))
	for k, v := range l.entries {
		out[k] = v
	}
	return out
}

func (l *ledger) sorted() []Status {
	l.mu.RLock()
	out := make([]Status, 0, len(l.entries))
	for _, v := range l.entries {
		out = append(out, v)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// captureTable keeps the render input last passed to Write per absolute path
type captureTable struct {
	mu   sync.RWMutex
	data map[string]map[string]any
}

func newCaptureTable() *captureTable {
	return &captureTable{data: make(map[string]map[string]any)}
}

func (c *captureTable) put(path string, data map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[path] = data
}

// get never returns nil; a miss is an empty map
func (c *captureTable) get(path string) map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if d, ok := c.data[path]; ok && d != nil {
		return d
	}
	return map[string]any{}
}

func (c *captureTable) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
