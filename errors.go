package mllwriter

import (
	"errors"
	"fmt"
)

// Errors shared by the concrete writer packages.
var (
	// ErrNoOpenBlock is returned when CloseTag is called with no block open.
	ErrNoOpenBlock = errors.New("mllwriter: no open block to close")

	// ErrNoTag is returned when a property is attached and the content does
	// not end with a tag to attach it to.
	ErrNoTag = errors.New("mllwriter: no preceding tag to attach properties to")

	// ErrInvalidName is returned for tag or attribute names that are not
	// ASCII alphanumeric with all letters lowercase.
	ErrInvalidName = errors.New("mllwriter: invalid tag or attribute name")

	// ErrEditingStarted is returned when the indent size is changed after
	// content has been written.
	ErrEditingStarted = errors.New("mllwriter: indent size cannot change after writing has started")

	// ErrBlockMismatch is returned when a close operation does not match the
	// kind of the innermost open block.
	ErrBlockMismatch = errors.New("mllwriter: close does not match the open block")

	// ErrUnsupported is returned for operations a writer has no use for,
	// such as single tags in JSON.
	ErrUnsupported = errors.New("mllwriter: operation not supported by this writer")
)

// CheckName validates a tag or attribute name for the markup writers. Names
// must be non-empty ASCII alphanumeric with all letters lowercase.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}
