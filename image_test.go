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

import "testing"

func TestColorSpace(t *testing.T) {
	tests := []struct {
		cs           ColorSpace
		wantString   string
		wantChannels int
	}{
		{DeviceGray, "DeviceGray", 1},
		{DeviceRGB, "DeviceRGB", 3},
		{Indexed, "Indexed", 1},
		{ColorSpace(0), "pngread.ColorSpace(0)", 1},
	}
	for _, tt := range tests {
		if got := tt.cs.String(); got != tt.wantString {
			t.Errorf("got %q, want %q", got, tt.wantString)
		}
		if got := tt.cs.Channels(); got != tt.wantChannels {
			t.Errorf("%s: got %d channels, want %d", tt.cs, got, tt.wantChannels)
		}
	}
}
