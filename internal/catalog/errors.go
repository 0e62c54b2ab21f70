package catalog

import (
	"github.com/dmitrijs2005/futurama-catalog/internal/remote"
)

// LoadError is a classified catalog load failure. It is published on the
// store's error subject and returned from LoadCatalog.
type LoadError struct {
	Kind    remote.Kind
	Message string
	Err     error
}

func newLoadError(err error) *LoadError {
	kind := remote.Classify(err)
	return &LoadError{Kind: kind, Message: kind.Message(), Err: err}
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap exposes both the kind sentinel and the underlying cause to
// errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.Sentinel()}
	}
	return []error{e.Kind.Sentinel(), e.Err}
}
