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

// This file contains the scoped structural writers.  Each Begin* method
// writes an opening token; the matching Close method writes the closing
// token and is idempotent, so it can be both deferred and called
// explicitly.  Errors are sticky on the Writer, which makes it safe to
// finish a scope after a failed write: the closing token simply becomes a
// no-op and the saved error is reported by [Writer.Err] and [Writer.Close].

// An ObjectScope brackets the body of an indirect object between
// "<id> 0 obj" and "endobj".
type ObjectScope struct {
	w      *Writer
	ref    Reference
	closed bool
}

// BeginObject starts an indirect object.  If ref is 0, a fresh object
// number is allocated.  The current byte position is recorded against the
// object number for the cross-reference table.
func (pdf *Writer) BeginObject(ref Reference) *ObjectScope {
	if ref == 0 {
		ref = pdf.Alloc()
	}
	if pdf.err == nil && pdf.state != stateClosed && pdf.w != nil {
		pdf.ensureHeader()
		if pdf.err == nil {
			pdf.xref[ref] = pdf.pos
		}
	}
	pdf.writef("%d 0 obj\n", ref)
	return &ObjectScope{w: pdf, ref: ref}
}

// Ref returns the object number of the object being written.
func (o *ObjectScope) Ref() Reference {
	return o.ref
}

// Close writes the "endobj" terminator.
func (o *ObjectScope) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.w.writeString("endobj\n")
}

// A DictScope brackets dictionary entries between "<<" and ">>".
type DictScope struct {
	w      *Writer
	closed bool
}

// BeginDict starts a dictionary.
func (pdf *Writer) BeginDict() *DictScope {
	pdf.writeString("<<\n")
	return &DictScope{w: pdf}
}

// Entry writes a single key/value pair on its own line.  Entries appear in
// the output in call order.
func (d *DictScope) Entry(key Name, val Object) {
	d.w.writeObject(key)
	d.w.writeString(" ")
	d.w.writeObject(val)
	d.w.writeString("\n")
}

// BeginArrayEntry starts an entry whose value is an array built element by
// element.  Closing the returned scope terminates the entry.
func (d *DictScope) BeginArrayEntry(key Name) *ArrayScope {
	d.w.writeObject(key)
	d.w.writeString(" ")
	a := d.w.BeginArray()
	a.entry = true
	return a
}

// Close writes the ">>" terminator.
func (d *DictScope) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.w.writeString(">>\n")
}

// An ArrayScope brackets array elements between "[" and "]".  Elements are
// separated by a single space, with no space after "[" or before "]".
type ArrayScope struct {
	w      *Writer
	first  bool
	entry  bool // terminate the enclosing dictionary entry's line on Close
	closed bool
}

// BeginArray starts an array.
func (pdf *Writer) BeginArray() *ArrayScope {
	pdf.writeString("[")
	return &ArrayScope{w: pdf, first: true}
}

// Next starts the next element: it writes the separating space before
// every element except the first.  The caller then writes the element
// itself through the writer.
func (a *ArrayScope) Next() {
	if a.first {
		a.first = false
		return
	}
	a.w.writeString(" ")
}

// Elem writes obj as the next array element.
func (a *ArrayScope) Elem(obj Object) {
	a.Next()
	a.w.writeObject(obj)
}

// Close writes the "]" terminator.
func (a *ArrayScope) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.w.writeString("]")
	if a.entry {
		a.w.writeString("\n")
	}
}

// A StreamScope brackets raw stream data between "stream" and "endstream".
// The enclosing dictionary must already contain a /Length entry equal to
// the exact number of bytes written into the scope; the writer can neither
// compute nor patch the length after the fact, since it cannot rewind.
type StreamScope struct {
	w      *Writer
	closed bool
}

// BeginStream starts the data part of a stream object.
func (pdf *Writer) BeginStream() *StreamScope {
	pdf.writeString("stream\n")
	return &StreamScope{w: pdf}
}

// Write writes raw stream data.
func (s *StreamScope) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close writes the "endstream" terminator.
func (s *StreamScope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.w.writeString("\nendstream\n")
}
