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

package imagemeta

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scandocs/scanpdf"
)

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, img, nil)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeInfo(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		want *scanpdf.ImageInfo
	}{
		{
			name: "gray",
			img:  image.NewGray(image.Rect(0, 0, 20, 30)),
			want: &scanpdf.ImageInfo{
				Width:  20,
				Height: 30,
				Mode:   scanpdf.ColorModeGray,
				Format: scanpdf.FormatJPEG,
			},
		},
		{
			name: "rgba",
			img:  image.NewRGBA(image.Rect(0, 0, 7, 5)),
			want: &scanpdf.ImageInfo{
				Width:  7,
				Height: 5,
				Mode:   scanpdf.ColorModeRGB,
				Format: scanpdf.FormatJPEG,
			},
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got, err := DecodeInfo(encodeJPEG(t, test.img))
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, got); d != "" {
				t.Errorf("wrong info (-want +got):\n%s", d)
			}
		})
	}
}

func TestRejectPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatal(err)
	}

	_, err = DecodeInfo(buf.Bytes())
	var uerr *scanpdf.UnsupportedImageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *scanpdf.UnsupportedImageError, got %v", err)
	}
	if uerr.Format != "png" {
		t.Errorf("error names format %q, expected %q", uerr.Format, "png")
	}
}

func TestRejectGarbage(t *testing.T) {
	_, err := DecodeInfo([]byte("not an image at all"))
	var uerr *scanpdf.UnsupportedImageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *scanpdf.UnsupportedImageError, got %v", err)
	}
}
