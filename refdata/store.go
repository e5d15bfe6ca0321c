// Package refdata holds the read-only reference tables (census names, streets,
// zip codes) the record generator draws from, together with the loader that
// builds them from flat files.
package refdata

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrNotFound      = errors.New("refdata: no matching reference row")
	ErrInvalidGender = errors.New("refdata: gender must be F or M")
	ErrReadOnly      = errors.New("refdata: store is opened read-only")
)

// Store is the query contract of the reference data. Every method returns one
// row chosen uniformly at random from the matching set, or ErrNotFound.
type Store interface {
	RandomFirstName(gender Gender, maxRank int) (string, error)
	RandomLastName(maxRank int) (string, error)
	RandomStreetName() (string, error)
	RandomZip(filter ZipFilter) (ZipRecord, error)
}

// Picker chooses an index in [0, n). Implementations must be safe for concurrent use.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}

type storeConfig struct {
	picker Picker
}

type Option func(*storeConfig)

// WithPicker makes the store draw rows with p, e.g. to share a seeded source
// with the generator.
func WithPicker(p Picker) Option {
	return func(c *storeConfig) {
		if p != nil {
			c.picker = p
		}
	}
}

func newStoreConfig(opts []Option) storeConfig {
	conf := storeConfig{picker: globalPicker{}}
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

func pick[T any](p Picker, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrNotFound
	}
	return items[p.IntN(len(items))], nil
}

func withinRank(rank int, maxRank int) bool {
	return maxRank <= 0 || rank <= maxRank
}
