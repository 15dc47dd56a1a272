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
	"io"
	"sort"
)

// PageOptions controls how a page dictionary is written.  All fields are
// optional.
type PageOptions struct {
	// Ref is the object number to use for the page.  If 0, a fresh
	// number is allocated.
	Ref Reference

	// Contents lists the page's content stream objects.  A single id is
	// written as one reference, several ids as an array of references.
	Contents []Reference

	// MediaBox is the page rectangle.  Pages without a media box inherit
	// it from a viewer default; image pages normally set it.
	MediaBox *Rectangle

	// Parent is the page tree node the page belongs to.  If 0, the
	// document's page tree root is used, reserving it first if needed.
	Parent Reference

	// Resources is the page's resource dictionary, either a structured
	// [*Resources] value or a [Raw] fragment.
	Resources Object
}

// PageTreeRoot returns the object number of the document's page tree root,
// reserving it on first use.  The operation is idempotent and independent
// of call order: it may be called before any page is written (to obtain an
// explicit parent id) or not at all (the root is then reserved by the
// first page write, or at close for empty documents).
func (pdf *Writer) PageTreeRoot() Reference {
	if pdf.pageRoot == 0 {
		pdf.pageRoot = pdf.Alloc()
	}
	return pdf.pageRoot
}

// AddPage writes a page dictionary and appends it to the document's page
// list.  Page order in the document equals call order.  The object number
// of the page is returned.
func (pdf *Writer) AddPage(opt *PageOptions) (Reference, error) {
	if pdf.state == stateClosed || pdf.w == nil {
		return 0, ErrClosed
	}
	if pdf.err != nil {
		return 0, pdf.err
	}
	if opt == nil {
		opt = &PageOptions{}
	}

	parent := opt.Parent
	if parent == 0 {
		parent = pdf.PageTreeRoot()
	}

	obj := pdf.BeginObject(opt.Ref)
	defer obj.Close()
	pdf.pages = append(pdf.pages, obj.Ref())

	dict := pdf.BeginDict()
	defer dict.Close()
	dict.Entry("Type", Name("Page"))
	dict.Entry("Parent", parent)
	if opt.Resources != nil {
		dict.Entry("Resources", opt.Resources)
	}
	if opt.MediaBox != nil {
		dict.Entry("MediaBox", opt.MediaBox)
	}
	switch len(opt.Contents) {
	case 0:
		// pass
	case 1:
		dict.Entry("Contents", opt.Contents[0])
	default:
		contents := dict.BeginArrayEntry("Contents")
		for _, ref := range opt.Contents {
			contents.Elem(ref)
		}
		contents.Close()
	}

	return obj.Ref(), pdf.err
}

// writePageTree emits the page tree root object, listing every page in
// emission order.  Called exactly once, from Close.
func (pdf *Writer) writePageTree() Reference {
	root := pdf.PageTreeRoot()

	obj := pdf.BeginObject(root)
	dict := pdf.BeginDict()
	dict.Entry("Type", Name("Pages"))
	kids := dict.BeginArrayEntry("Kids")
	for _, page := range pdf.pages {
		kids.Elem(page)
	}
	kids.Close()
	dict.Entry("Count", Integer(len(pdf.pages)))
	dict.Close()
	obj.Close()

	return root
}

// Resources is a structured page resource dictionary, mapping resource
// names to image XObject references.
type Resources struct {
	XObjects map[Name]Reference
}

// PDF implements the [Object] interface.  Names are written in sorted
// order so that output is deterministic.
func (r *Resources) PDF(w io.Writer) error {
	names := make([]Name, 0, len(r.XObjects))
	for name := range r.XObjects {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})

	_, err := io.WriteString(w, "<< /XObject <<")
	if err != nil {
		return err
	}
	for _, name := range names {
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = r.XObjects[name].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, " >> >>")
	return err
}
