package sicle

import (
	"errors"
	"fmt"

	"github.com/sicle-games/sicle/pkg/sicle/config"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
	"github.com/sicle-games/sicle/pkg/sicle/router"
)

// Sentinel errors re-exported for callers that only import this package.
var (
	// ErrPageNotFound indicates a page name that was never registered.
	ErrPageNotFound = router.ErrPageNotFound

	// ErrUnknownKey indicates a key name that does not parse.
	ErrUnknownKey = keys.ErrUnknownKey

	// ErrUnknownAction indicates a bindings file naming an action the
	// application did not provide.
	ErrUnknownAction = config.ErrUnknownAction
)

// SourceError represents a failure of an input backend: a device that could
// not be opened, a subsystem that failed to initialise, a read that broke.
// Routing itself never fails this way; misconfigured bindings are logged.
type SourceError struct {
	Op  string // Operation that failed (e.g., "open_device", "init_sdl")
	Err error  // Underlying error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sicle: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sicle: %s", e.Op)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new source error.
func NewSourceError(op string, err error) *SourceError {
	return &SourceError{Op: op, Err: err}
}

// IsSourceError checks if an error is a source error.
func IsSourceError(err error) bool {
	var srcErr *SourceError
	return errors.As(err, &srcErr)
}

// IsPageNotFound checks if an error reports an unregistered page.
func IsPageNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}
