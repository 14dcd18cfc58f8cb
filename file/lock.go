package file

import (
	"path/filepath"
	"sync"
)

// Locks gives each destination path its own mutex so concurrent requests
// writing the same file take turns.
type Locks struct {
	mu    sync.Mutex
	paths map[string]*sync.Mutex
}

func (l *Locks) Lock(path string) (unlock func()) {
	key := filepath.Clean(path)

	l.mu.Lock()
	if l.paths == nil {
		l.paths = make(map[string]*sync.Mutex)
	}
	m, ok := l.paths[key]
	if !ok {
		m = &sync.Mutex{}
		l.paths[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
