package generator

import (
	"errors"
	"fmt"
)

// ErrLookupFailure marks a reference data query that matched no row.
var ErrLookupFailure = errors.New("lookup failure")

func lookupFailure(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLookupFailure, what, err)
}
