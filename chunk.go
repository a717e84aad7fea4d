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

// chunkType is the 4-byte type tag of a PNG chunk, in big-endian byte
// order.
type chunkType uint32

// The chunk types the decoder interprets.  Every other chunk is
// skipped without interpretation.
const (
	chunkIHDR chunkType = 0x49484452
	chunkPLTE chunkType = 0x504c5445
	chunkTRNS chunkType = 0x74524e53
	chunkPHYS chunkType = 0x70485973
	chunkIDAT chunkType = 0x49444154
	chunkIEND chunkType = 0x49454e44
)

func (c chunkType) String() string {
	return string([]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)})
}
