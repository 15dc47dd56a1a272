// scanpdf - a library for writing image-based PDF files
// Copyright (C) 2026  The scanpdf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanpdf

import (
	"errors"
	"strconv"
)

var (
	// ErrClosed is returned when a write is attempted after the writer has
	// been closed, or before an output sink has been established.
	ErrClosed = errors.New("PDF writer is closed")

	// ErrNoDecoder is returned by [Writer.AddImagePage] when no image
	// decoder has been configured via [WriterOptions].
	ErrNoDecoder = errors.New("no image decoder configured")
)

// UnsupportedImageError indicates that an image cannot be embedded because
// its color mode or its source encoding is outside the recognized set.
// The image must be converted by the caller before submission; no
// transcoding is attempted.
type UnsupportedImageError struct {
	Format string // source encoding, if known (e.g. "png")
	Err    error
}

func (err *UnsupportedImageError) Error() string {
	msg := "unsupported image"
	if err.Format != "" {
		msg += " format " + strconv.Quote(err.Format)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *UnsupportedImageError) Unwrap() error {
	return err.Err
}
