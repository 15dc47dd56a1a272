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

// Package scanpdf writes restricted PDF 1.7 files in which every page
// shows one raster image scaled to fill the page.
//
// The package is built around an append-only sequential [Writer]: objects
// are emitted one at a time, their byte offsets recorded as they are
// written, and the cross-reference table, trailer and startxref pointer
// are produced from these records when the writer is closed.  No part of
// the document is buffered or rewritten.
//
// Only the features needed for image-per-page documents are supported.
// There is no text, no fonts, no encryption, and no reading or updating of
// existing files.  Image bytes are embedded verbatim; inputs that do not
// match a PDF compression filter must be converted before submission.
//
// The document and imagemeta subpackages provide, respectively, a
// high-level lifecycle wrapper and the standard image metadata decoder.
package scanpdf
