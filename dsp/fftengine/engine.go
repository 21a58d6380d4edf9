// Package fftengine provides forward complex FFT engines behind a small
// interface, so callers can pick a backend by name.
//
// Every backend computes in complex128 and rounds to complex64 only at the
// interface boundary. Results are the unscaled forward DFT
// X[k] = sum_n x[n]·exp(-2πi·k·n/N).
package fftengine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Engine computes a forward DFT of a fixed size.
type Engine interface {
	// Len returns the transform size N.
	Len() int

	// Forward writes the unscaled forward DFT of src into dst.
	// Both slices must have length N. dst and src may alias.
	Forward(dst, src []complex64) error
}

// Factory creates an engine for size n.
type Factory func(n int) (Engine, error)

var (
	// ErrLength is returned for a non-positive size or mismatched slice lengths.
	ErrLength = errors.New("fftengine: invalid length")

	// ErrUnknownBackend is returned by Lookup and ParseBackend for unregistered names.
	ErrUnknownBackend = errors.New("fftengine: unknown backend")
)

// Backend names.
const (
	NameAlgoFFT = "algofft"
	NameGonum   = "gonum"
	NameGoDSP   = "godsp"
)

// Default is the backend used when none is configured.
const Default = NameAlgoFFT

var factories = map[string]Factory{
	NameAlgoFFT: AlgoFFT,
	NameGonum:   Gonum,
	NameGoDSP:   GoDSP,
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseBackend normalizes a backend name. The empty string selects Default.
func ParseBackend(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	if _, ok := factories[name]; !ok {
		return "", fmt.Errorf("%w: %q (have %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}
	return name, nil
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	name, err := ParseBackend(name)
	if err != nil {
		return nil, err
	}
	return factories[name], nil
}

func validateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: size must be > 0: %d", ErrLength, n)
	}
	return nil
}

// widening holds the complex128 work buffers shared by all backends.
type widening struct {
	in  []complex128
	out []complex128
}

func newWidening(n int) widening {
	return widening{
		in:  make([]complex128, n),
		out: make([]complex128, n),
	}
}

func (w *widening) load(dst, src []complex64) error {
	n := len(w.in)
	if len(src) != n || len(dst) != n {
		return fmt.Errorf("%w: dst=%d src=%d, want %d", ErrLength, len(dst), len(src), n)
	}
	for i, v := range src {
		w.in[i] = complex128(v)
	}
	return nil
}

func store(dst []complex64, src []complex128) {
	for i, v := range src {
		dst[i] = complex64(v)
	}
}
