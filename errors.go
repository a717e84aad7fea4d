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

import "errors"

// Decoding errors.  All of them are fatal: a corrupt structural read
// invalidates all subsequent chunk offsets, so the decoder never tries
// to recover.  Use [errors.Is] to test for them; errors returned by
// [Decode] wrap these in a [*DecodeError].
var (
	// ErrInvalidSignature indicates that the stream does not start
	// with the PNG signature.
	ErrInvalidSignature = errors.New("not a PNG stream")

	// ErrInvalidHeader indicates that the first chunk is not IHDR.
	ErrInvalidHeader = errors.New("missing IHDR chunk")

	// ErrBitDepth indicates a bit depth greater than 8.
	ErrBitDepth = errors.New("unsupported bit depth")

	// ErrColorType indicates a color type outside the PNG standard set.
	ErrColorType = errors.New("unsupported color type")

	// ErrCompression indicates a compression method other than deflate.
	ErrCompression = errors.New("unsupported compression method")

	// ErrFilter indicates a filter method other than the standard
	// adaptive filter.
	ErrFilter = errors.New("unsupported filter method")

	// ErrInterlaced indicates an interlaced image.
	ErrInterlaced = errors.New("interlaced images not supported")

	// ErrMissingPalette indicates an indexed image without a PLTE chunk.
	ErrMissingPalette = errors.New("missing palette")

	// ErrTruncated indicates that the source was exhausted, or failed,
	// before all declared chunk lengths were satisfied.
	ErrTruncated = errors.New("unexpected end of PNG stream")

	// ErrCodecUnavailable indicates that alpha separation was needed
	// but no flate codec was available.
	ErrCodecUnavailable = errors.New("no flate codec available")
)

// DecodeError indicates that a PNG stream could not be decoded.
// Name is the diagnostic name passed to [Decode].
type DecodeError struct {
	Name string
	Err  error
}

func (err *DecodeError) Error() string {
	if err.Name == "" {
		return "pngread: " + err.Err.Error()
	}
	return "pngread: " + err.Name + ": " + err.Err.Error()
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}
