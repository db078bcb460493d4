package core

import (
	"errors"
)

var (
	// ErrInvalidFormat is returned when a pixel format is undefined or
	// unsupported for the requested operation.
	ErrInvalidFormat = errors.New("invalid pixel format")
	// ErrFootprintMismatch is returned when a declared byte layout does
	// not match the actual storage footprint.
	ErrFootprintMismatch = errors.New("storage footprint mismatch")
	ErrAllocationFailed  = errors.New("allocation failed")
	// ErrCannotResizeExternalStorage is returned when resizing a bitmap
	// that borrows caller-owned storage.
	ErrCannotResizeExternalStorage = errors.New("cannot resize external storage")
	ErrPathDoesNotExist            = errors.New("path does not exist")
	ErrFileLoadFailed              = errors.New("file load failed")
	ErrFileSaveFailed              = errors.New("file save failed")
	// ErrResizeFailed is returned when the resampling backend fails.
	ErrResizeFailed = errors.New("resize operation failed")
	// ErrUnsupportedOnPlatform is returned when an encode target is not
	// available for the requested data layout.
	ErrUnsupportedOnPlatform = errors.New("unsupported on this target")
)
