package service

import (
	"slices"
	"sync"
)

// keyLocks hands out one mutex per problem key. Keys come from the corpus,
// so the map is bounded and entries are never dropped.
type keyLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{m: make(map[string]*sync.Mutex)}
}

func (l *keyLocks) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.m[key]
	if !ok {
		m = &sync.Mutex{}
		l.m[key] = m
	}
	return m
}

// lock locks key and returns its unlock func.
func (l *keyLocks) lock(key string) func() {
	m := l.get(key)
	m.Lock()
	return m.Unlock
}

// lockAll locks several keys in sorted order so that concurrent callers
// cannot deadlock.
func (l *keyLocks) lockAll(keys []string) func() {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, k := range sorted {
		m := l.get(k)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
