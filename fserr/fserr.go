package fserr

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind identifies the category of a filesystem failure.
type Kind uint8

const (
	// IOFailure is the generic read/write/flush failure, used when no
	// more specific kind applies.
	IOFailure Kind = iota

	// NotFound means the final path component is absent.
	NotFound

	// PermissionDenied means access was refused at the target or some
	// ancestor.
	PermissionDenied

	// AlreadyExists means the destination was present when the
	// operation required it absent.
	AlreadyExists

	// NotADirectory means a directory was expected but the entry is
	// something else.
	NotADirectory

	// IsADirectory means a non-directory was expected but the entry is
	// a directory.
	IsADirectory

	// NotEmpty means a non-recursive delete hit a populated directory.
	NotEmpty

	// CrossDevice means a rename crossed filesystem boundaries. It is
	// an internal signal: Move consumes it to trigger the copy+delete
	// fallback and never surfaces it to callers.
	CrossDevice
)

var kindNames = map[Kind]string{
	IOFailure:        "io failure",
	NotFound:         "not found",
	PermissionDenied: "permission denied",
	AlreadyExists:    "already exists",
	NotADirectory:    "not a directory",
	IsADirectory:     "is a directory",
	NotEmpty:         "directory not empty",
	CrossDevice:      "cross-device link",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "io failure"
}

// Error is a filesystem failure tied to one offending path.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err for the given operation and path, deriving the Kind
// from the underlying error.
func New(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: KindOf(err), Err: err}
}

// WithKind wraps err with an explicit Kind, bypassing derivation.
func WithKind(op, path string, kind Kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// KindOf derives the Kind for an arbitrary error. Unrecognized errors
// map to IOFailure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return IOFailure
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	case errors.Is(err, syscall.EISDIR):
		return IsADirectory
	case errors.Is(err, syscall.ENOTEMPTY):
		return NotEmpty
	case errors.Is(err, syscall.EXDEV):
		return CrossDevice
	default:
		return IOFailure
	}
}

// IsKind reports whether err is (or wraps) an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// PathOf returns the offending path carried by err, or "" when err does
// not wrap an *Error.
func PathOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Path
	}
	return ""
}
