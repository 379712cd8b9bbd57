package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidOffset     = errors.New("invalid offset")
)

// Resolution is a pixel size written as "WxH".
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ParseResolution accepts "175x279" (also "175X279", surrounding spaces ignored).
// Zero or negative sizes parse fine; callers decide whether they are usable.
func ParseResolution(s string) (Resolution, error) {
	s = strings.TrimSpace(s)
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	wi, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	return Resolution{Width: wi, Height: hi}, nil
}

func (r Resolution) String() string {
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}

// Valid reports whether both sides are at least one pixel.
func (r Resolution) Valid() bool {
	return r.Width >= 1 && r.Height >= 1
}

// Fits reports whether r fits inside outer in both dimensions.
func (r Resolution) Fits(outer Resolution) bool {
	return r.Width <= outer.Width && r.Height <= outer.Height
}

// Offset is a signed placement written as "x,y". It is never clamped.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	xi, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	yi, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return Offset{X: xi, Y: yi}, nil
}

func (o Offset) String() string {
	return strconv.Itoa(o.X) + "," + strconv.Itoa(o.Y)
}
