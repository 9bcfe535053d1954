package cleaner

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure during a run.
type ErrorKind int

const (
	// InvalidRootPath means the root to scan is not an existing directory.
	// It is the only kind that aborts a run.
	InvalidRootPath ErrorKind = iota + 1
	// TraversalError means a directory entry could not be enumerated.
	TraversalError
	// FileNotOpened means a file could not be read as UTF-8 text.
	FileNotOpened
	// FileNotCleaned means a file was read but could not be written back.
	// The write may have been partial, leaving the file in an indeterminate
	// state that has to be recovered externally (e.g. from version control).
	FileNotCleaned
)

var (
	ErrInvalidRootPath = errors.New("invalid root path")
	ErrTraversal       = errors.New("traversal error")
	ErrFileNotOpened   = errors.New("file not opened")
	ErrFileNotCleaned  = errors.New("file not cleaned")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidRootPath:
		return "invalid root path"
	case TraversalError:
		return "traversal error"
	case FileNotOpened:
		return "file not opened"
	case FileNotCleaned:
		return "file not cleaned"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidRootPath:
		return ErrInvalidRootPath
	case TraversalError:
		return ErrTraversal
	case FileNotOpened:
		return ErrFileNotOpened
	case FileNotCleaned:
		return ErrFileNotCleaned
	default:
		return nil
	}
}

// Error is a failure attributed to a single path.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewError wraps err as a failure of the given kind on path.
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind, so callers can write
// errors.Is(err, cleaner.ErrFileNotCleaned).
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
