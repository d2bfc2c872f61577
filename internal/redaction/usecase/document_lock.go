package usecase

import (
	"sync"
)

// DocumentLocker serializes map read-merge-write cycles per document. Two
// concurrent operations on the same document queue up; operations on
// different documents proceed in parallel. A single instance is shared by
// every use case that writes token maps.
type DocumentLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewDocumentLocker creates an empty DocumentLocker.
func NewDocumentLocker() *DocumentLocker {
	return &DocumentLocker{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the per-document mutex and returns its release function.
func (d *DocumentLocker) lock(document string) func() {
	d.mu.Lock()
	m, ok := d.locks[document]
	if !ok {
		m = &sync.Mutex{}
		d.locks[document] = m
	}
	d.mu.Unlock()

	m.Lock()
	return m.Unlock
}
