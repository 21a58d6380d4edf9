// Package registry provides the implementation registry for the float32
// vecmath kernels.
//
// Implementation packages register themselves from init functions and the
// vecmath package selects the best entry for the running CPU on first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// UnaryFn computes dst[i] = f(src[i]).
type UnaryFn func(dst, src []float32)

// BinaryFn computes dst[i] = f(a[i], b[i]).
type BinaryFn func(dst, a, b []float32)

// OpEntry represents one registered kernel set.
//
// Every entry must provide all five operations; a partial entry is rejected
// at selection time.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g. "generic").
	Name string

	// SIMDLevel indicates the instruction set this implementation requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order between compatible entries.
	// Higher wins. The baseline pure Go entry uses 0.
	Priority int

	// Copy performs dst[i] = src[i].
	Copy UnaryFn

	// Add performs dst[i] = a[i] + b[i].
	Add BinaryFn

	// Mul performs dst[i] = a[i] * b[i].
	Mul BinaryFn

	// Square performs dst[i] = src[i] * src[i].
	Square UnaryFn

	// Sqrt performs dst[i] = sqrt(src[i]), correctly rounded.
	Sqrt UnaryFn
}

// Complete reports whether all operations are populated.
func (e *OpEntry) Complete() bool {
	return e.Copy != nil && e.Add != nil && e.Mul != nil && e.Square != nil && e.Sqrt != nil
}

// OpRegistry manages registered kernel sets.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry used by the vecmath package.
var Global = &OpRegistry{}

// Register adds an implementation. Safe for concurrent use, but all
// registrations should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features.
//
// When features.ForceGeneric is set the lowest-priority compatible entry
// (the pure Go baseline) is returned instead. Returns nil if nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if features.ForceGeneric {
		for i := len(r.entries) - 1; i >= 0; i-- {
			if r.entries[i].SIMDLevel == cpu.SIMDNone {
				return &r.entries[i]
			}
		}
		return nil
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// ListEntries returns a copy of all registered entries.
// Primarily intended for tests and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// sortByPriority sorts entries by priority, descending.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

func supports(features cpu.Features, level cpu.SIMDLevel) bool {
	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	case cpu.SIMDAVX2:
		return features.HasAVX2
	case cpu.SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
