/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"errors"
	"fmt"
)

var (
	errTypeCheck  = errors.New("type check error")
	errRangeCheck = errors.New("range check error")

	// ErrUnsortedGlyphs is returned by Subset when the glyph index list is not in strictly
	// ascending order.
	ErrUnsortedGlyphs = errors.New("glyph indices must be sorted ascending without duplicates")

	// ErrNoCFFSubsetter is returned by Subset for OpenType fonts with CFF outlines when
	// Options.CFF is not set.
	ErrNoCFFSubsetter = errors.New("no CFF subsetter configured for OpenType font")
)

// FormatError reports a font program that is malformed or uses a feature that is not supported.
type FormatError struct {
	// Reason is a human readable description, such as "Required glyf table missing".
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("truetype: %s: %v", e.Reason, e.Err)
	}
	return "truetype: " + e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErrorf(format string, args ...interface{}) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// wrapFormatError turns low level read errors into a FormatError with `reason`.
// FormatErrors pass through unchanged and nil stays nil.
func wrapFormatError(err error, reason string) error {
	if err == nil {
		return nil
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return err
	}
	return &FormatError{Reason: reason, Err: err}
}
