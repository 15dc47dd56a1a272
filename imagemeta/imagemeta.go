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

// Package imagemeta extracts embedding metadata from encoded images.
//
// It is the standard image decoding collaborator for [scanpdf.Writer]:
// only the image header is decoded, never the pixel data.  Decoders for
// PNG, TIFF and BMP are registered in addition to JPEG so that such inputs
// are rejected by name instead of as "unknown format".
package imagemeta

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/jpeg" // register decoders for format detection
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/scandocs/scanpdf"
)

// DecodeInfo reports the pixel dimensions, color mode and source encoding
// of the encoded image data.  It has the signature required by
// [scanpdf.WriterOptions].
//
// Images that cannot be embedded verbatim fail with an
// [*scanpdf.UnsupportedImageError]: only JPEG data has a matching PDF
// compression filter, and only grayscale and RGB-family color models map
// to a supported color space.
func DecodeInfo(data []byte) (*scanpdf.ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &scanpdf.UnsupportedImageError{Err: err}
	}
	if format != "jpeg" {
		return nil, &scanpdf.UnsupportedImageError{Format: format}
	}

	var mode scanpdf.ColorMode
	switch cfg.ColorModel {
	case color.GrayModel, color.Gray16Model:
		mode = scanpdf.ColorModeGray
	case color.YCbCrModel, color.RGBAModel, color.NRGBAModel,
		color.RGBA64Model, color.NRGBA64Model:
		mode = scanpdf.ColorModeRGB
	default:
		return nil, &scanpdf.UnsupportedImageError{
			Format: format,
			Err:    fmt.Errorf("color model %T is not supported", cfg.ColorModel),
		}
	}

	return &scanpdf.ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Mode:   mode,
		Format: scanpdf.FormatJPEG,
	}, nil
}
