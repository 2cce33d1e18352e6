package buildbox_lib

import (
	"errors"
	"fmt"
)

// ErrorKind tags a BBoxError with the failure class
type ErrorKind int

const (
	ErrIO ErrorKind = iota
	ErrSpecNotFound
	ErrSpecNotRegularFile
	ErrSpecSyntax
	ErrUnknownRelease
	ErrUnsupportedArch
	ErrTargetNotEmpty
	ErrTargetNotFound
	ErrQemuNotFound
	ErrIndexUpdateFailed
	ErrBatchFailed
	ErrMountFailed
	ErrUnmountFailed
	ErrResidualContent
	ErrResidualMount
	ErrTargetBusy
)

var kindNames = map[ErrorKind]string{
	ErrIO:                 "io",
	ErrSpecNotFound:       "spec-not-found",
	ErrSpecNotRegularFile: "spec-not-regular-file",
	ErrSpecSyntax:         "spec-syntax",
	ErrUnknownRelease:     "unknown-release",
	ErrUnsupportedArch:    "unsupported-arch",
	ErrTargetNotEmpty:     "target-not-empty",
	ErrTargetNotFound:     "target-not-found",
	ErrQemuNotFound:       "qemu-not-found",
	ErrIndexUpdateFailed:  "index-update-failed",
	ErrBatchFailed:        "batch-failed",
	ErrMountFailed:        "mount-failed",
	ErrUnmountFailed:      "unmount-failed",
	ErrResidualContent:    "residual-content",
	ErrResidualMount:      "residual-mount",
	ErrTargetBusy:         "target-busy",
}

func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// BBoxError is the only error type surfaced by build-box operations.
// Kind tells the caller what failed, Msg is meant for humans,
// Err keeps the underlying cause, if any. Step is set by pipelines,
// Batch is the zero-based index of the failed package batch.
type BBoxError struct {
	Kind  ErrorKind
	Msg   string
	Step  string
	Batch int
	Err   error
}

// NewError formats a new tagged error
func NewError(kind ErrorKind, format string, args ...interface{}) *BBoxError {
	return &BBoxError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError tags a lower level error. Returns nil if err is nil.
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &BBoxError{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *BBoxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
	}
	return e.Msg
}

func (e *BBoxError) Unwrap() error {
	return e.Err
}

// Is matches any BBoxError of the same kind, so errors.Is(err, &BBoxError{Kind: ErrTargetNotFound}) works.
func (e *BBoxError) Is(target error) bool {
	t, ok := target.(*BBoxError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind returns true if err is a BBoxError of a given kind
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, &BBoxError{Kind: kind})
}
