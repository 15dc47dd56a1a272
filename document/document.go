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

// Package document provides a high-level interface for producing
// image-per-page PDF documents, wiring the imagemeta decoder into the
// sequential writer.
package document

import (
	"io"
	"os"
	"time"

	"github.com/scandocs/scanpdf"
	"github.com/scandocs/scanpdf/imagemeta"
)

// Document writes a scanned-image PDF, one image per page.
type Document struct {
	Out *scanpdf.Writer
}

// Options configures a new document.  The zero value is usable.
type Options struct {
	// Title is stored in the document information dictionary.
	Title string

	// DecodeImageInfo overrides the standard imagemeta decoder.
	DecodeImageInfo func(data []byte) (*scanpdf.ImageInfo, error)
}

func writerOptions(opt *Options, closeSink bool) *scanpdf.WriterOptions {
	if opt == nil {
		opt = &Options{}
	}
	decode := opt.DecodeImageInfo
	if decode == nil {
		decode = imagemeta.DecodeInfo
	}
	return &scanpdf.WriterOptions{
		DecodeImageInfo: decode,
		Info: &scanpdf.Info{
			Title:        opt.Title,
			Producer:     "github.com/scandocs/scanpdf",
			CreationDate: time.Now(),
		},
		CloseSink: closeSink,
	}
}

// Create creates the named PDF file and opens it for output.  The document
// owns the file; Close closes it.
func Create(name string, opt *Options) (*Document, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &Document{
		Out: scanpdf.NewWriter(fd, writerOptions(opt, true)),
	}, nil
}

// Write prepares a document for writing to w.  The caller keeps ownership
// of w and must close it, if needed, after Close returns.
func Write(w io.Writer, opt *Options) *Document {
	return &Document{
		Out: scanpdf.NewWriter(w, writerOptions(opt, false)),
	}
}

// AddImage appends one page showing the encoded image at its native pixel
// size.  The image bytes are embedded verbatim; unsupported inputs fail
// with an [*scanpdf.UnsupportedImageError].
func (doc *Document) AddImage(data []byte) (scanpdf.Reference, error) {
	return doc.Out.AddImagePage(data, nil)
}

// AddImageFile reads the named image file and appends it as a page.
func (doc *Document) AddImageFile(name string) (scanpdf.Reference, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return 0, err
	}
	return doc.AddImage(data)
}

// Close finalizes the document.  After Close, no more pages can be added.
func (doc *Document) Close() error {
	return doc.Out.Close()
}
