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

// Package pngread extracts from a PNG stream exactly the information a
// PDF image XObject needs: pixel dimensions, color space, bit depth,
// optional palette, optional color-key transparency, and the
// still-compressed pixel data.
//
// The decoder does not decompress and re-encode the image in the
// common case.  PNG image data is already in the flate format used by
// PDF streams, so the concatenated IDAT payload can be embedded
// verbatim; the row prediction applied by the PNG encoder is recorded
// in [Image.DecodeParms] for the PDF consumer to undo.  The one
// exception is images with an alpha channel: PDF has no interleaved
// alpha, so the pixel data is decompressed once, split into a color
// stream and a soft-mask stream, and both are compressed again
// independently.
//
// The xobject sub-package turns a decoded [Image] into the dictionary
// entries of a PDF image XObject.
package pngread
