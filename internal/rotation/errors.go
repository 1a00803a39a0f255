package rotation

import "errors"

var (
	// ErrInvalidPath means the path does not exist, is not a directory, or
	// is not a readable image file.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyDirectory means the directory contains no image files.
	ErrEmptyDirectory = errors.New("no wallpapers")
)
