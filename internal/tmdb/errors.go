package tmdb

import "fmt"

// ErrorKind distinguishes failure classes so callers can pick retry or
// surface-to-user policy per class.
type ErrorKind int

const (
	// KindTransport covers network, TLS, and context failures.
	KindTransport ErrorKind = iota
	// KindStatus covers non-2xx responses from the provider.
	KindStatus
	// KindDecode covers syntactically invalid response bodies.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a provider failure. StatusCode and Message are only set for
// KindStatus; Err is the underlying cause for the other kinds.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("tmdb: status %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("tmdb: status %d", e.StatusCode)
	default:
		return fmt.Sprintf("tmdb: %s: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
