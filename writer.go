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
	"fmt"
	"io"
	"os"
)

// header is written once, before any other output.
const header = "%PDF-1.7\n"

type writerState int

const (
	stateNotStarted writerState = iota
	stateHeaderWritten
	stateClosed
)

// WriterOptions allows to influence the behaviour of a [Writer].
// Options set to their zero value result in the default behaviour.
type WriterOptions struct {
	// DecodeImageInfo extracts pixel dimensions, color mode and source
	// encoding from raw image bytes.  It must be set for
	// [Writer.AddImagePage] to work; the imagemeta package provides the
	// standard implementation.
	DecodeImageInfo func(data []byte) (*ImageInfo, error)

	// Info, if non-nil, is written as the document information dictionary.
	Info *Info

	// CloseSink makes Close also close the underlying writer, if it
	// implements io.Closer.
	CloseSink bool
}

// Writer writes a restricted PDF file to an io.Writer, one object at a
// time.  Output is append-only: the byte offset of every indirect object is
// recorded as it is written, and the cross-reference table, trailer and
// startxref pointer are emitted from these records when the writer is
// closed.  Nothing is buffered and nothing is revisited.
//
// Writers are not safe for concurrent use: object emission order must equal
// output byte order.
type Writer struct {
	decodeImage func(data []byte) (*ImageInfo, error)
	info        *Info
	closeSink   bool

	w     io.Writer
	pos   int64
	state writerState
	err   error // sticky; the first write error aborts all later output

	nextID   Reference
	xref     map[Reference]int64
	pages    []Reference
	pageRoot Reference
}

// NewWriter prepares a PDF file for writing to w.  The header is not
// emitted until the first byte is written, so that ids can be allocated
// and options inspected before output starts.
func NewWriter(w io.Writer, opt *WriterOptions) *Writer {
	pdf := &Writer{
		w:      w,
		nextID: 1,
		xref:   make(map[Reference]int64),
	}
	if opt != nil {
		pdf.decodeImage = opt.DecodeImageInfo
		pdf.info = opt.Info
		pdf.closeSink = opt.CloseSink
	}
	return pdf
}

// Create creates the named PDF file and opens it for output.  A previous
// file with the same name is overwritten.  The writer owns the file and
// closes it when Close is called.
func Create(name string, opt *WriterOptions) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var o WriterOptions
	if opt != nil {
		o = *opt
	}
	o.CloseSink = true
	return NewWriter(fd, &o), nil
}

// Alloc allocates an object number for an indirect object.  Numbers are
// issued in increasing order, starting at 1, and are never reused.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextID
	pdf.nextID++
	return ref
}

// Err returns the first error encountered while writing, if any.
func (pdf *Writer) Err() error {
	return pdf.err
}

// Write writes raw bytes to the PDF file, keeping track of the current
// position.  The file header is emitted first, if it has not been already.
// After Close, Write fails with [ErrClosed] and appends no bytes.
//
// This is a low-level entry point, normally only used between Begin/Close
// pairs of the scoped writers.
func (pdf *Writer) Write(p []byte) (int, error) {
	if pdf.err != nil {
		return 0, pdf.err
	}
	if pdf.state == stateClosed || pdf.w == nil {
		return 0, ErrClosed
	}
	pdf.ensureHeader()
	if pdf.err != nil {
		return 0, pdf.err
	}
	n, err := pdf.w.Write(p)
	pdf.pos += int64(n)
	if err != nil {
		pdf.err = err
	}
	return n, err
}

func (pdf *Writer) ensureHeader() {
	if pdf.state != stateNotStarted {
		return
	}
	pdf.state = stateHeaderWritten
	pdf.writeRaw([]byte(header))
}

// writeRaw bypasses the state check; only used while the header or the
// finalization sequence itself is being written.
func (pdf *Writer) writeRaw(p []byte) {
	if pdf.err != nil {
		return
	}
	n, err := pdf.w.Write(p)
	pdf.pos += int64(n)
	if err != nil {
		pdf.err = err
	}
}

func (pdf *Writer) writeString(s string) {
	pdf.Write([]byte(s))
}

func (pdf *Writer) writef(format string, a ...interface{}) {
	if pdf.err != nil {
		return
	}
	fmt.Fprintf(pdf, format, a...)
}

// writeObject serialises a direct object at the current position.
func (pdf *Writer) writeObject(obj Object) {
	if pdf.err != nil {
		return
	}
	if obj == nil {
		pdf.writeString("null")
		return
	}
	err := obj.PDF(pdf)
	if err != nil && pdf.err == nil {
		pdf.err = err
	}
}

// Close finalizes the document.  It writes, in this order, the page tree,
// the catalog, the information dictionary (if configured), the
// cross-reference table, the trailer, the startxref pointer and the
// end-of-file marker.  If the writer owns the sink, the sink is closed as
// well.
//
// Closing a writer that never wrote a page still produces a valid document
// with an empty page tree.  Close is a no-op on an already closed writer.
func (pdf *Writer) Close() error {
	if pdf.state == stateClosed {
		return pdf.err
	}
	if pdf.err == nil && pdf.w != nil {
		pdf.ensureHeader()

		root := pdf.writePageTree()
		catalog := pdf.writeCatalog(root)
		info := pdf.writeInfo()

		xrefPos := pdf.pos
		pdf.writeXRefTable()
		pdf.writeTrailer(catalog, info)
		pdf.writef("startxref\n%d\n", xrefPos)
		pdf.writeString("%%EOF")
	}
	err := pdf.err
	pdf.state = stateClosed
	if pdf.closeSink {
		if c, ok := pdf.w.(io.Closer); ok {
			cerr := c.Close()
			if err == nil {
				err = cerr
			}
		}
	}
	// Make sure we cannot accidentally write beyond the end of file.
	pdf.w = nil
	return err
}

func (pdf *Writer) writeCatalog(pageRoot Reference) Reference {
	obj := pdf.BeginObject(0)
	dict := pdf.BeginDict()
	dict.Entry("Type", Name("Catalog"))
	dict.Entry("Pages", pageRoot)
	dict.Close()
	obj.Close()
	return obj.Ref()
}
