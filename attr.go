package tmxparser

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type attrValue interface {
	int | int64 | uint32 | float64
}

func getString(a xml.Attr) (string, error) {
	if !utf8.ValidString(a.Value) {
		return "", fmt.Errorf("%w: %s is not valid utf-8", ErrParseBytes, a.Name.Local)
	}
	return a.Value, nil
}

func getValue[T attrValue](a xml.Attr) (T, error) {
	s, err := getString(a)
	if err != nil {
		return 0, err
	}
	return parseValue[T](s)
}

func parseValue[T attrValue](s string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, 0)
		*p = int(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return v, fmt.Errorf("%w: %q", ErrParseBytes, s)
	}
	return v, nil
}

// getFlag decodes the 0/1 integers Tiled writes for booleans.
func getFlag(a xml.Attr) (bool, error) {
	n, err := getValue[int](a)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// getColour decodes #RRGGBB or #AARRGGBB. A missing alpha is opaque.
func getColour(a xml.Attr) (Colour, error) {
	s, err := getString(a)
	if err != nil {
		return Colour{}, err
	}
	return parseColour(s)
}

func parseColour(s string) (Colour, error) {
	c := White
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return c, parseErrorf("colour %q does not start with #", s)
	}
	i := 0
	switch len(hex) {
	case 6:
	case 8:
		a, err := hexByte(hex[0:2])
		if err != nil {
			return c, err
		}
		c.A = a
		i = 2
	default:
		return c, parseErrorf("colour %q does not have 6 or 8 hex digits", s)
	}
	var err error
	if c.R, err = hexByte(hex[i : i+2]); err != nil {
		return c, err
	}
	if c.G, err = hexByte(hex[i+2 : i+4]); err != nil {
		return c, err
	}
	if c.B, err = hexByte(hex[i+4 : i+6]); err != nil {
		return c, err
	}
	return c, nil
}

func hexByte(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, parseErrorf("hex value %q could not be parsed", s)
	}
	return uint8(n), nil
}
