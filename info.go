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

import "time"

// Info holds the fields of the document information dictionary.  Zero
// fields are omitted from the output.
type Info struct {
	Title        string
	Producer     string
	CreationDate time.Time
}

// writeInfo emits the information dictionary during finalization.  It
// returns 0 if no info was configured.
func (pdf *Writer) writeInfo() Reference {
	if pdf.info == nil {
		return 0
	}

	obj := pdf.BeginObject(0)
	dict := pdf.BeginDict()
	if pdf.info.Title != "" {
		dict.Entry("Title", String(pdf.info.Title))
	}
	if pdf.info.Producer != "" {
		dict.Entry("Producer", String(pdf.info.Producer))
	}
	if !pdf.info.CreationDate.IsZero() {
		dict.Entry("CreationDate", Date(pdf.info.CreationDate))
	}
	dict.Close()
	obj.Close()

	return obj.Ref()
}
