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
	"compress/zlib"
	"io"
)

// codec provides the flate implementation used to unpack interleaved
// image data and to re-compress the separated color and alpha streams.
type codec interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) io.WriteCloser
}

type zlibCodec struct{}

func (zlibCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

func (zlibCodec) NewWriter(w io.Writer) io.WriteCloser {
	return zlib.NewWriter(w)
}

// separateAlpha splits the decompressed scanlines of an image with an
// alpha channel into a color-only buffer and an alpha-only buffer.
// colors is the number of color channels per pixel: 1 for gray+alpha,
// 3 for RGB+alpha.
//
// Each scanline starts with a filter type byte, which is copied to
// both outputs so that the two streams stay decodable with the same
// predictor parameters.  Row order and pixel order are preserved.
func separateAlpha(raw []byte, width, height, colors int) (color, alpha []byte, err error) {
	stride := 1 + (colors+1)*width
	if len(raw) < height*stride {
		return nil, nil, ErrTruncated
	}

	color = make([]byte, 0, height*(1+colors*width))
	alpha = make([]byte, 0, height*(1+width))
	for y := 0; y < height; y++ {
		row := raw[y*stride : (y+1)*stride]
		color = append(color, row[0])
		alpha = append(alpha, row[0])
		for x := 0; x < width; x++ {
			pix := row[1+x*(colors+1) : 1+(x+1)*(colors+1)]
			color = append(color, pix[:colors]...)
			alpha = append(alpha, pix[colors])
		}
	}
	return color, alpha, nil
}

func (d *decoder) inflate(data []byte) ([]byte, error) {
	zr, err := d.codec.NewReader(bytes.NewReader(data))
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, ErrTruncated
	} else if err != nil {
		return nil, err
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err == io.ErrUnexpectedEOF {
		return nil, ErrTruncated
	} else if err != nil {
		return nil, err
	}
	return raw, nil
}

func (d *decoder) deflate(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := d.codec.NewWriter(buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
