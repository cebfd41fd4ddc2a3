package version

import "errors"

var (
	// ErrEmpty indicates that the raw version string, or the remainder after
	// an epoch separator, is empty.
	ErrEmpty = errors.New("version is empty")

	// ErrInvalidEpoch indicates that an epoch candidate was found but is not a
	// plain non-negative decimal integer.
	ErrInvalidEpoch = errors.New("epoch must be numeric")

	// ErrEmptyUpstream indicates that the upstream version component is empty.
	ErrEmptyUpstream = errors.New("upstream version is empty")

	// ErrUpstreamStartsWithNonDigit indicates that the upstream version does
	// not begin with an ASCII digit.
	ErrUpstreamStartsWithNonDigit = errors.New("upstream version must start with a digit")

	// ErrUpstreamInvalidCharacters indicates that the upstream version contains
	// a character outside its allowed set.
	ErrUpstreamInvalidCharacters = errors.New("upstream version contains invalid characters")

	// ErrEmptyRevision indicates that a revision separator was found with
	// nothing after it.
	ErrEmptyRevision = errors.New("debian revision is empty")

	// ErrRevisionInvalidCharacters indicates that the debian revision contains
	// a character outside its allowed set.
	ErrRevisionInvalidCharacters = errors.New("debian revision contains invalid characters")
)
