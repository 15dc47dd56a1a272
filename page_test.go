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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddPage(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, nil)

	ref, err := w.AddPage(&PageOptions{
		MediaBox: &Rectangle{0, 0, 612, 792},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := "%PDF-1.7\n" +
		"2 0 obj\n" +
		"<<\n" +
		"/Type /Page\n" +
		"/Parent 1 0 R\n" +
		"/MediaBox [0 0 612 792]\n" +
		">>\n" +
		"endobj\n"
	got := buf.String()[:len(want)]
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong page object (-want +got):\n%s", d)
	}
	if ref != 2 {
		t.Errorf("page got object number %d, expected 2", ref)
	}
	checkDocument(t, buf.Bytes())
}

func TestPageOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, nil)

	var refs []Reference
	for i := 0; i < 3; i++ {
		ref, err := w.AddPage(nil)
		if err != nil {
			t.Fatal(err)
		}
		refs = append(refs, ref)
	}
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
	checkDocument(t, buf.Bytes())

	want := []byte("/Kids [2 0 R 3 0 R 4 0 R]\n/Count 3\n")
	if !bytes.Contains(buf.Bytes(), want) {
		t.Errorf("page tree %q not found", want)
	}
	if d := cmp.Diff([]Reference{2, 3, 4}, refs); d != "" {
		t.Errorf("wrong page numbers (-want +got):\n%s", d)
	}
}

func TestMultipleContents(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, nil)

	a := w.Alloc()
	b := w.Alloc()
	_, err := w.AddPage(&PageOptions{Contents: []Reference{a, b}})
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	want := []byte("/Contents [1 0 R 2 0 R]\n")
	if !bytes.Contains(buf.Bytes(), want) {
		t.Errorf("%q not found in output", want)
	}
}

func TestRawResources(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, nil)

	_, err := w.AddPage(&PageOptions{
		Resources: Raw("<< /ProcSet [/PDF /ImageB] >>"),
	})
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	want := []byte("/Resources << /ProcSet [/PDF /ImageB] >>\n")
	if !bytes.Contains(buf.Bytes(), want) {
		t.Errorf("%q not found in output", want)
	}
}

func TestExplicitPageRef(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, nil)

	ref := w.Alloc()
	got, err := w.AddPage(&PageOptions{Ref: ref})
	if err != nil {
		t.Fatal(err)
	}
	if got != ref {
		t.Errorf("page got object number %d, expected %d", got, ref)
	}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}
	checkDocument(t, buf.Bytes())
}
