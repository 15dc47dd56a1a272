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
)

// ColorMode identifies an image's color interpretation.  The set is
// closed: only modes listed here can be embedded.
type ColorMode int

const (
	ColorModeGray ColorMode = iota + 1
	ColorModeRGB
)

// Format identifies an image's source encoding.  The set is closed: image
// bytes are embedded verbatim, so only encodings with a matching PDF
// compression filter can be used.
type Format int

const (
	FormatJPEG Format = iota + 1
)

var colorSpaceNames = map[ColorMode]Name{
	ColorModeGray: "DeviceGray",
	ColorModeRGB:  "DeviceRGB",
}

var filterNames = map[Format]Name{
	FormatJPEG: "DCTDecode",
}

// ImageInfo describes an encoded image, as reported by the image decoding
// collaborator.
type ImageInfo struct {
	Width, Height int
	Mode          ColorMode
	Format        Format
}

// ImagePageOptions controls how an image page is written.  All fields are
// optional.
type ImagePageOptions struct {
	// Ref, ImageRef and ContentsRef are explicit object numbers for the
	// page, the image XObject and the content stream.  Zero values mean
	// "allocate".
	Ref         Reference
	ImageRef    Reference
	ContentsRef Reference

	// MediaBox overrides the default page rectangle
	// (0, 0, width, height), i.e. the image at native pixel size.
	MediaBox *Rectangle

	// Parent is passed through to [PageOptions].
	Parent Reference
}

// AddImagePage writes one page showing a single image scaled to fill it.
//
// Three objects are emitted: an image XObject holding data verbatim, a
// content stream drawing the image, and the page dictionary.  The image
// bytes are not inspected beyond the metadata query and not re-encoded;
// images whose color mode or encoding is outside the recognized set fail
// with an [*UnsupportedImageError].
//
// The object number of the page is returned.
func (pdf *Writer) AddImagePage(data []byte, opt *ImagePageOptions) (Reference, error) {
	if pdf.state == stateClosed || pdf.w == nil {
		return 0, ErrClosed
	}
	if pdf.err != nil {
		return 0, pdf.err
	}
	if opt == nil {
		opt = &ImagePageOptions{}
	}
	if pdf.decodeImage == nil {
		return 0, ErrNoDecoder
	}

	info, err := pdf.decodeImage(data)
	if err != nil {
		return 0, err
	}
	colorSpace, ok := colorSpaceNames[info.Mode]
	if !ok {
		return 0, &UnsupportedImageError{
			Err: fmt.Errorf("unknown color mode %d", info.Mode),
		}
	}
	filter, ok := filterNames[info.Format]
	if !ok {
		return 0, &UnsupportedImageError{
			Err: fmt.Errorf("no compression filter for encoding %d", info.Format),
		}
	}

	mediaBox := opt.MediaBox
	if mediaBox == nil {
		mediaBox = &Rectangle{
			URx: float64(info.Width),
			URy: float64(info.Height),
		}
	}

	img := pdf.BeginObject(opt.ImageRef)
	dict := pdf.BeginDict()
	dict.Entry("Type", Name("XObject"))
	dict.Entry("Subtype", Name("Image"))
	dict.Entry("Width", Integer(info.Width))
	dict.Entry("Height", Integer(info.Height))
	dict.Entry("ColorSpace", colorSpace)
	dict.Entry("BitsPerComponent", Integer(8))
	dict.Entry("Length", Integer(len(data)))
	dict.Entry("Filter", filter)
	dict.Close()
	stm := pdf.BeginStream()
	stm.Write(data)
	stm.Close()
	img.Close()

	// The content program is fixed: save the graphics state, scale the
	// unit square to the image size at the origin, paint the image,
	// restore.
	program := fmt.Sprintf("q\n%d 0 0 %d 0 0 cm\n/Img Do\nQ",
		info.Width, info.Height)

	contents := pdf.BeginObject(opt.ContentsRef)
	dict = pdf.BeginDict()
	dict.Entry("Length", Integer(len(program)))
	dict.Close()
	stm = pdf.BeginStream()
	stm.Write([]byte(program))
	stm.Close()
	contents.Close()

	return pdf.AddPage(&PageOptions{
		Ref:      opt.Ref,
		Contents: []Reference{contents.Ref()},
		MediaBox: mediaBox,
		Parent:   opt.Parent,
		Resources: &Resources{
			XObjects: map[Name]Reference{"Img": img.Ref()},
		},
	})
}
