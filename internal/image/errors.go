package imagepkg

import (
	"errors"
	"fmt"
)

// InvalidSpecError reports a geometry or parameter problem found before any
// image is touched.
type InvalidSpecError struct {
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return "invalid overlay spec: " + e.Reason
}

func invalidSpec(format string, args ...any) error {
	return &InvalidSpecError{Reason: fmt.Sprintf(format, args...)}
}

// ImageDecodeError carries the path of an image that could not be decoded.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("decode image %q: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// IOError reports a failure writing the composed image.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func IsInvalidSpec(err error) bool {
	var e *InvalidSpecError
	return errors.As(err, &e)
}

func IsImageDecode(err error) bool {
	var e *ImageDecodeError
	return errors.As(err, &e)
}

func IsIO(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}
