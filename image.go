// seehuhn.de/go/pngread - decode PNG streams for embedding into PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package pngread

import "strconv"

// Filter is the PDF stream filter which decodes [Image.Data] and
// [Image.SMask].
const Filter = "FlateDecode"

// ColorSpace identifies the PDF color space of the decoded samples.
type ColorSpace int

// The color spaces a PNG image can map to.
const (
	DeviceGray ColorSpace = iota + 1
	DeviceRGB
	Indexed
)

func (cs ColorSpace) String() string {
	switch cs {
	case DeviceGray:
		return "DeviceGray"
	case DeviceRGB:
		return "DeviceRGB"
	case Indexed:
		return "Indexed"
	default:
		return "pngread.ColorSpace(" + strconv.Itoa(int(cs)) + ")"
	}
}

// Channels returns the number of color channels per pixel, not
// counting any alpha channel.
func (cs ColorSpace) Channels() int {
	if cs == DeviceRGB {
		return 3
	}
	return 1
}

// DecodeParms describes how a PDF consumer must configure its flate
// filter to undo the row prediction applied by the PNG encoder.
// The fields correspond to the entries of a /DecodeParms dictionary.
type DecodeParms struct {
	Predictor        int
	Colors           int
	BitsPerComponent int
	Columns          int
}

// Image is the result of decoding a PNG stream.  It contains all the
// information needed to embed the image as a PDF image XObject.
//
// An Image is constructed once by a [Decode] call and not modified
// afterwards.  Decoding keeps no state between calls, so independent
// sources can be decoded concurrently.
type Image struct {
	// Width and Height are the pixel dimensions from the IHDR chunk.
	Width, Height int

	// ColorSpace is derived from the PNG color type: gray and
	// gray+alpha map to DeviceGray, truecolor and truecolor+alpha to
	// DeviceRGB, and paletted images to Indexed.
	ColorSpace ColorSpace

	// BitsPerComponent is the PNG bit depth (1, 2, 4 or 8).
	BitsPerComponent int

	// DecodeParms are the predictor parameters for Data.
	DecodeParms DecodeParms

	// Palette contains the raw RGB triples of the PLTE chunk.
	// It is non-empty if and only if ColorSpace is Indexed.
	Palette []byte

	// Transparency is the color key from a tRNS chunk, or nil if the
	// image has none.  It holds a single palette index for indexed
	// images, a single sample value for gray images, and three sample
	// values for RGB images.
	Transparency []int

	// DPI is the resolution recorded in a pHYs chunk, or 0 if the
	// chunk was absent or the horizontal and vertical densities
	// disagree.
	DPI float64

	// Data is the flate-compressed image data.  For images without an
	// alpha channel this is the verbatim concatenation of the IDAT
	// payloads; otherwise it contains only the re-compressed color
	// samples.
	Data []byte

	// SMask is the independently flate-compressed alpha channel, with
	// the same row geometry as Data (one filter byte followed by one
	// sample per pixel).  It is nil unless the PNG color type carries
	// an alpha channel.  A PDF writer embeds it as a DeviceGray image
	// XObject referenced via /SMask.
	SMask []byte

	// MinVersion is the lowest PDF version which supports this image:
	// 1.4 if SMask is present, 1.3 if color-key masking is used, and
	// 1.0 otherwise.
	MinVersion Version
}
