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
	"slices"

	"golang.org/x/exp/maps"
)

// writeXRefTable emits a classic cross-reference table with a single
// subsection covering ids 0 to nextID-1.  Entries are fixed 20-byte
// records.  Id 0 is the standard free entry; allocated ids that were never
// written (which would be a caller bookkeeping error) also get free
// entries, so the table stays dense.
func (pdf *Writer) writeXRefTable() {
	const freeEntry = "0000000000 65535 f \n"

	pdf.writef("xref\n0 %d\n", pdf.nextID)
	pdf.writeString(freeEntry)

	ids := maps.Keys(pdf.xref)
	slices.Sort(ids)

	next := Reference(1)
	for _, id := range ids {
		for ; next < id; next++ {
			pdf.writeString(freeEntry)
		}
		pdf.writef("%010d %05d n \n", pdf.xref[id], 0)
		next = id + 1
	}
	for ; next < pdf.nextID; next++ {
		pdf.writeString(freeEntry)
	}
}

// writeTrailer emits the trailer dictionary.  Size counts every allocated
// id plus the free entry for id 0.
func (pdf *Writer) writeTrailer(catalog, info Reference) {
	pdf.writeString("trailer\n")
	dict := pdf.BeginDict()
	dict.Entry("Size", Integer(pdf.nextID))
	dict.Entry("Root", catalog)
	if info != 0 {
		dict.Entry("Info", info)
	}
	dict.Close()
}
