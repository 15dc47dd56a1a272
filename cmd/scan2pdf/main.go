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

// Scan2pdf wraps scanned images into a PDF file, one image per page.
//
// JPEG input is embedded as-is.  PNG, TIFF and BMP input is re-encoded to
// JPEG first, since the writer itself never transcodes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/scandocs/scanpdf/document"
)

func main() {
	out := flag.String("o", "out.pdf", "output PDF file")
	title := flag.String("title", "", "document title")
	quality := flag.Int("quality", 90, "JPEG quality for converted input images")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] image ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := document.Create(*out, &document.Options{Title: *title})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}

	for _, name := range flag.Args() {
		data, err := loadJPEG(name, *quality)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		_, err = doc.AddImage(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	err = doc.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}

// loadJPEG reads an image file, converting to JPEG where needed.
func loadJPEG(name string, quality int) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if format == "jpeg" {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	buf := &bytes.Buffer{}
	err = jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return buf.Bytes(), nil
}
