package buildbox_lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	err := NewError(ErrTargetNotFound, "target '%s' not found.", "foo")
	require.Equal(t, "target 'foo' not found.", err.Error())
	require.True(t, errors.Is(err, &BBoxError{Kind: ErrTargetNotFound}))
	require.False(t, errors.Is(err, &BBoxError{Kind: ErrMountFailed}))

	wrapped := fmt.Errorf("context: %w", err)
	require.True(t, IsKind(wrapped, ErrTargetNotFound))
	require.False(t, IsKind(wrapped, ErrIO))
}

func TestWrapError(t *testing.T) {
	require.Nil(t, WrapError(ErrIO, nil, "nothing"))

	cause := errors.New("permission denied")
	err := WrapError(ErrIO, cause, "Unable to write %s", "/x")
	require.Equal(t, "Unable to write /x: permission denied", err.Error())
	require.True(t, errors.Is(err, cause))
	require.True(t, IsKind(err, ErrIO))
	require.Equal(t, "io", ErrIO.String())
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := &BBoxError{Kind: ErrBatchFailed, Msg: "failed to install batch #2 of packages", Batch: 2}
	wrapped := fmt.Errorf("bootstrap: %w", fmt.Errorf("batches: %w", err))
	require.True(t, IsKind(wrapped, ErrBatchFailed))
	require.False(t, IsKind(wrapped, ErrIO))
	require.False(t, IsKind(nil, ErrIO))
	require.False(t, IsKind(errors.New("plain"), ErrIO))

	var be *BBoxError
	require.True(t, errors.As(wrapped, &be))
	require.Equal(t, 2, be.Batch)
}
