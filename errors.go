package rmisearch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned when a Kind is out of range.
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// ErrUnsupportedKeyType indicates a strategy that needs a fixed-width
// integer key type was requested through the generic constructor.
// Use NewInteger for the vector strategies.
type ErrUnsupportedKeyType struct {
	Kind Kind
}

func (e *ErrUnsupportedKeyType) Error() string {
	return fmt.Sprintf("strategy %s requires a fixed-width integer key type", e.Kind)
}
