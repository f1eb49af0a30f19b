// Package apperr classifies the errors ghannotate can fail with.
// Each error carries a Kind so that callers can decide how to handle it
// (for example, ignore a missing input file) without comparing messages.
package apperr

import "errors"

// Kind is the discriminant of a classified error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfig means a required input is absent or invalid.
	KindConfig
	// KindMissingFile means the findings file doesn't exist.
	KindMissingFile
	// KindUnauthorized means GitHub rejected the credential when creating a check run.
	KindUnauthorized
	// KindAPI means any other GitHub API failure.
	KindAPI
	// KindMalformedInput means the findings file couldn't be decoded.
	KindMalformedInput
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMissingFile:
		return "missing_file"
	case KindUnauthorized:
		return "unauthorized"
	case KindAPI:
		return "api"
	case KindMalformedInput:
		return "malformed_input"
	default:
		return "unknown"
	}
}

// Error is a classified error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a classified error. cause may be nil.
func New(kind Kind, message string, cause error) error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
}

// KindOf returns the Kind of the outermost classified error in err's chain.
// It returns KindUnknown if err isn't classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
