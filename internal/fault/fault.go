// Package fault defines the error kinds the pipeline reports to users.
// Producers wrap a sentinel with fmt.Errorf("...: %w", ...); consumers
// match with errors.Is.
package fault

import "errors"

var (
	// ErrFileAccess covers unreadable input and unwritable output.
	ErrFileAccess = errors.New("file access error")
	// ErrAuth covers missing or rejected API credentials.
	ErrAuth = errors.New("authentication error")
	// ErrRateLimit is returned when a provider throttles the request.
	ErrRateLimit = errors.New("rate limit error")
	// ErrService covers any other provider-side failure, including
	// responses that are malformed at the transport level.
	ErrService = errors.New("service error")
	// ErrParse is returned when a model response cannot be decomposed
	// into the expected structure.
	ErrParse = errors.New("parse error")
	// ErrTimeout is returned when a request exceeds its bound.
	ErrTimeout = errors.New("timeout error")
)

var kinds = []error{ErrFileAccess, ErrAuth, ErrRateLimit, ErrService, ErrParse, ErrTimeout}

// Kind returns the taxonomy sentinel wrapped in err, or nil when err
// carries no known kind.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
