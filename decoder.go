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

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// PNG color types, as defined in the PNG specification.
const (
	ctGray      = 0
	ctRGB       = 2
	ctIndexed   = 3
	ctGrayAlpha = 4
	ctRGBAlpha  = 6
)

// Decode reads a PNG image from r and returns its descriptor.  The
// name is used in error messages only.  Decode does not close r; the
// caller must release the source on every return path.
//
// Errors are of type [*DecodeError] and wrap one of the sentinel
// errors of this package.
func Decode(r io.Reader, name string) (*Image, error) {
	d := &decoder{r: r, codec: zlibCodec{}}
	img, err := d.decode()
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	return img, nil
}

// decoder holds the state of a single decode pass.  It is not reused.
type decoder struct {
	r     io.Reader
	codec codec

	buf       [8]byte
	colorType byte

	palette []byte
	trns    []int
	dpi     float64
	idat    []byte
}

func (d *decoder) decode() (*Image, error) {
	if err := d.readFull(d.buf[:8]); err != nil {
		return nil, err
	}
	if !bytes.Equal(d.buf[:8], pngSignature) {
		return nil, ErrInvalidSignature
	}

	img, err := d.readHeader()
	if err != nil {
		return nil, err
	}

	// Walk the remaining chunks.  Only IEND terminates the loop: a
	// zero-length ancillary chunk before IEND is skipped like any
	// other unrecognised chunk, and a stream which never reaches IEND
	// runs into the end of its source and fails with ErrTruncated.
	for {
		if err := d.readFull(d.buf[:8]); err != nil {
			return nil, err
		}
		length := int(binary.BigEndian.Uint32(d.buf[:4]))
		tag := chunkType(binary.BigEndian.Uint32(d.buf[4:8]))
		if tag == chunkIEND {
			break
		}

		switch tag {
		case chunkPLTE:
			err = d.readPalette(length)
		case chunkTRNS:
			err = d.readTransparency(length)
		case chunkPHYS:
			err = d.readResolution(length)
		case chunkIDAT:
			err = d.readImageData(length)
		default:
			err = d.skip(length)
		}
		if err != nil {
			return nil, err
		}

		// chunk checksum, not verified
		if err := d.skip(4); err != nil {
			return nil, err
		}
	}

	if img.ColorSpace == Indexed && len(d.palette) == 0 {
		return nil, ErrMissingPalette
	}
	img.Palette = d.palette
	img.Transparency = d.trns
	img.DPI = d.dpi

	img.MinVersion = V1_0
	if img.Transparency != nil {
		// color-key masking needs /Mask, a PDF 1.3 feature
		img.MinVersion = V1_3
	}

	if d.colorType == ctGrayAlpha || d.colorType == ctRGBAlpha {
		if d.codec == nil {
			return nil, ErrCodecUnavailable
		}
		raw, err := d.inflate(d.idat)
		if err != nil {
			return nil, err
		}
		color, alpha, err := separateAlpha(raw, img.Width, img.Height, img.ColorSpace.Channels())
		if err != nil {
			return nil, err
		}
		img.Data, err = d.deflate(color)
		if err != nil {
			return nil, err
		}
		img.SMask, err = d.deflate(alpha)
		if err != nil {
			return nil, err
		}
		img.MinVersion = V1_4
	} else {
		img.Data = d.idat
	}

	return img, nil
}

// readHeader reads the IHDR chunk, including the preceding chunk
// header and the trailing checksum.
func (d *decoder) readHeader() (*Image, error) {
	if err := d.readFull(d.buf[:8]); err != nil {
		return nil, err
	}
	if chunkType(binary.BigEndian.Uint32(d.buf[4:8])) != chunkIHDR {
		return nil, ErrInvalidHeader
	}

	// The declared chunk length is not used; IHDR has a fixed layout.
	var hdr [13]byte
	if err := d.readFull(hdr[:]); err != nil {
		return nil, err
	}

	width := int(binary.BigEndian.Uint32(hdr[0:4]))
	height := int(binary.BigEndian.Uint32(hdr[4:8]))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid image size %dx%d", ErrInvalidHeader, width, height)
	}

	bitDepth := hdr[8]
	if bitDepth > 8 {
		return nil, fmt.Errorf("%w %d", ErrBitDepth, bitDepth)
	}

	d.colorType = hdr[9]
	var cs ColorSpace
	switch d.colorType {
	case ctGray, ctGrayAlpha:
		cs = DeviceGray
	case ctRGB, ctRGBAlpha:
		cs = DeviceRGB
	case ctIndexed:
		cs = Indexed
	default:
		return nil, fmt.Errorf("%w %d", ErrColorType, d.colorType)
	}

	if hdr[10] != 0 {
		return nil, fmt.Errorf("%w %d", ErrCompression, hdr[10])
	}
	if hdr[11] != 0 {
		return nil, fmt.Errorf("%w %d", ErrFilter, hdr[11])
	}
	if hdr[12] != 0 {
		return nil, ErrInterlaced
	}

	if err := d.skip(4); err != nil {
		return nil, err
	}

	return &Image{
		Width:            width,
		Height:           height,
		ColorSpace:       cs,
		BitsPerComponent: int(bitDepth),
		DecodeParms: DecodeParms{
			Predictor:        15,
			Colors:           cs.Channels(),
			BitsPerComponent: int(bitDepth),
			Columns:          width,
		},
	}, nil
}

func (d *decoder) readPalette(n int) error {
	d.palette = make([]byte, n)
	return d.readFull(d.palette)
}

// readTransparency reads a tRNS chunk.  For gray images the color key
// is the low byte of the 16-bit sample value, for RGB images the low
// bytes of the three sample values, and for indexed images the offset
// of the first fully transparent palette entry.  A tRNS chunk on an
// image with an alpha channel is ignored.
func (d *decoder) readTransparency(n int) error {
	t := make([]byte, n)
	if err := d.readFull(t); err != nil {
		return err
	}
	switch d.colorType {
	case ctGray:
		if len(t) < 2 {
			return fmt.Errorf("%w: short tRNS chunk", ErrTruncated)
		}
		d.trns = []int{int(t[1])}
	case ctRGB:
		if len(t) < 6 {
			return fmt.Errorf("%w: short tRNS chunk", ErrTruncated)
		}
		d.trns = []int{int(t[1]), int(t[3]), int(t[5])}
	case ctIndexed:
		if i := bytes.IndexByte(t, 0); i >= 0 {
			d.trns = []int{i}
		}
	}
	return nil
}

// readResolution reads a pHYs chunk.  The resolution is only recorded
// when the horizontal and vertical densities agree.
func (d *decoder) readResolution(n int) error {
	if n != 9 {
		return d.skip(n)
	}
	var buf [9]byte
	if err := d.readFull(buf[:]); err != nil {
		return err
	}
	x := binary.BigEndian.Uint32(buf[0:4])
	y := binary.BigEndian.Uint32(buf[4:8])
	if x != y {
		return nil
	}
	if buf[8] == 1 {
		// pixels per metre, at 39.3701 inches per metre
		d.dpi = float64(x) / 39.3701
	} else {
		d.dpi = float64(x)
	}
	return nil
}

func (d *decoder) readImageData(n int) error {
	buf := make([]byte, n)
	if err := d.readFull(buf); err != nil {
		return err
	}
	d.idat = append(d.idat, buf...)
	return nil
}

// readFull fills buf from the source.  All read failures, including
// errors of the underlying reader, surface as ErrTruncated: a declared
// length which cannot be satisfied invalidates everything that
// follows.
func (d *decoder) readFull(buf []byte) error {
	_, err := io.ReadFull(d.r, buf)
	if err == nil {
		return nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return fmt.Errorf("%w: %w", ErrTruncated, err)
}

func (d *decoder) skip(n int) error {
	_, err := io.CopyN(io.Discard, d.r, int64(n))
	if err == nil {
		return nil
	}
	if err == io.EOF {
		return ErrTruncated
	}
	return fmt.Errorf("%w: %w", ErrTruncated, err)
}
