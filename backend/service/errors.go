package service

import (
	"errors"
	"fmt"
)

// Not-found conditions, mapped to 404 by the API layer.
var (
	ErrBookNotFound = errors.New("book not found")
	ErrFileNotFound = errors.New("file not found")
	ErrUserNotFound = errors.New("user not found")
)

// ErrInvalidUpload is the base class of the save-workflow validation
// failures below; the API layer maps anything wrapping it to 400.
var ErrInvalidUpload = errors.New("invalid upload")

var (
	ErrEmptyTitle        = fmt.Errorf("%w: title cannot be empty", ErrInvalidUpload)
	ErrEmptyFilename     = fmt.Errorf("%w: file name is required", ErrInvalidUpload)
	ErrNoExtension       = fmt.Errorf("%w: file name has no extension", ErrInvalidUpload)
	ErrEmptyFile         = fmt.Errorf("%w: file is empty or corrupted", ErrInvalidUpload)
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file format", ErrInvalidUpload)
)
