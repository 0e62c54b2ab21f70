package remote

import (
	"errors"
)

// Failure classes produced by the adapter. Callers match them with errors.Is.
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrNotFound           = errors.New("remote resource not found")
	ErrUnknown            = errors.New("unknown remote failure")
)

// Kind is the classified category of a fetch failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetworkUnavailable
	KindNotFound
)

// String returns a stable identifier for logs.
func (k Kind) String() string {
	switch k {
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Message returns the fixed user-facing message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindNetworkUnavailable:
		return "Connection error: the character service could not be reached"
	case KindNotFound:
		return "Data not found"
	default:
		return "An error occurred"
	}
}

// Sentinel returns the sentinel error for the kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindNetworkUnavailable:
		return ErrNetworkUnavailable
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrUnknown
	}
}

// Classify maps any error to a Kind. The mapping is total: nil and
// unrecognised errors are KindUnknown.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrNetworkUnavailable):
		return KindNetworkUnavailable
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}
