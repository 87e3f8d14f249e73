package fact

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const invalidArgumentCode = "INVALID_ARGUMENT"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrMissingLanguage  = errors.New("payload has no language and none could be detected")
	ErrMalformedPayload = errors.New("malformed fact payload")
)

// RemoteServiceError is returned when the fact service answers with a
// status other than 200.
type RemoteServiceError struct {
	StatusCode int
	URL        string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("fact service returned status %d", e.StatusCode)
}

// TransportError wraps a network-level failure reaching the fact service.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// argumentError reports a rejected argument. It unwraps to
// ErrInvalidArgument, to the cause and to the categorized go-errors form.
type argumentError struct {
	cause       error
	categorized error
}

func (e *argumentError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidArgument, e.cause)
}

func (e *argumentError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.cause, e.categorized}
}

func invalidArgument(cause error) error {
	return &argumentError{
		cause: cause,
		categorized: goerrors.Wrap(cause, goerrors.CategoryValidation, "invalid argument").
			WithTextCode(invalidArgumentCode),
	}
}

// IsInvalidArgument reports whether err was raised by argument validation.
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidArgument) || goerrors.IsCategory(err, goerrors.CategoryValidation)
}
