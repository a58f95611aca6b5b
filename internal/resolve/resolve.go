// Package resolve implements ordered fallback chains: a list of named
// providers tried in sequence, first success wins.
//
// Providers distinguish "I have nothing here" (return [ErrUnavailable], the
// chain moves on) from a real failure (any other error, the chain aborts and
// the error propagates). Both the core-count and memory lookups in the probe
// package are built on this.
package resolve

import "errors"

// ErrUnavailable is returned by a provider that has no value to offer.
// The chain skips it and tries the next provider.
var ErrUnavailable = errors.New("provider unavailable")

// ErrExhausted is returned by [First] when every provider was unavailable.
var ErrExhausted = errors.New("all providers unavailable")

// Provider is one step of a fallback chain.
type Provider[T any] struct {
	Name string
	Get  func() (T, error)
}

// First tries the providers in order and returns the first successful value
// along with the name of the provider that produced it.
//
// A provider returning an error that wraps [ErrUnavailable] is skipped. Any
// other error aborts the chain immediately: a provider that *has* a value but
// cannot produce it (e.g. an env var that is set but unparsable) is a real
// failure, not a reason to fall through.
func First[T any](providers []Provider[T]) (T, string, error) {
	var zero T
	for _, p := range providers {
		v, err := p.Get()
		if err == nil {
			return v, p.Name, nil
		}
		if errors.Is(err, ErrUnavailable) {
			continue
		}
		return zero, p.Name, err
	}
	return zero, "", ErrExhausted
}
