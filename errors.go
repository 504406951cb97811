package tmxparser

import (
	"errors"
	"fmt"
)

// Errors returned by Parse and ParseFS, usually wrapped with detail. Match
// them with errors.Is.
var (
	// ErrParse reports malformed xml or a value that breaks the format,
	// such as a bad colour, tile token or tile count.
	ErrParse = errors.New("tmx: parse error")

	// ErrParseBytes reports an attribute that is not valid utf-8 or does
	// not convert to the expected number.
	ErrParseBytes = errors.New("tmx: could not decode attribute value")

	// ErrUnsupportedType reports an enum value, encoding or compression
	// this package does not know.
	ErrUnsupportedType = errors.New("tmx: unsupported type")

	// ErrMissingPoint reports a polygon or polyline pair without a comma.
	ErrMissingPoint = errors.New("tmx: point is missing a coordinate")

	// ErrIncludeCycle reports a tileset or template that is reached again
	// while it is still being read.
	ErrIncludeCycle = errors.New("tmx: file includes itself")

	// ErrIncludeDepth reports includes nested deeper than SetMaxIncludeDepth
	// allows.
	ErrIncludeDepth = errors.New("tmx: too many nested includes")
)

// FileReadError reports a map, tileset or template file that could not be
// read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("tmx: failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, fmt.Sprintf(format, args...))
}
