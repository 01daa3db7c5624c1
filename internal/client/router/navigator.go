package router

import "sync"

// Navigator holds the current path and at most one pending hard
// navigation. Background code (the 401 handler, the session watcher) calls
// Force; the REPL loop drains it with TakePending before each prompt.
type Navigator struct {
	mu      sync.Mutex
	current string
	pending string
	history []string
}

func NewNavigator(start string) *Navigator {
	return &Navigator{current: Clean(start)}
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go records path as current and pushes the previous one onto the history.
func (n *Navigator) Go(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	path = Clean(path)
	if path == n.current {
		return
	}
	if n.current != "" {
		n.history = append(n.history, n.current)
	}
	n.current = path
}

// Replace changes the current path without touching history; used for
// redirects.
func (n *Navigator) Replace(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = Clean(path)
}

// Back returns to the previous path, if any.
func (n *Navigator) Back() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == 0 {
		return n.current, false
	}
	last := len(n.history) - 1
	n.current = n.history[last]
	n.history = n.history[:last]
	return n.current, true
}

// Force schedules a hard navigation. A later call overwrites an earlier
// one that was not yet taken.
func (n *Navigator) Force(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = Clean(path)
}

// TakePending returns and clears the scheduled navigation.
func (n *Navigator) TakePending() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	p := n.pending
	n.pending = ""
	return p, p != ""
}
