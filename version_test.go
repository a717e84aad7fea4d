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

func TestVersionString(t *testing.T) {
	tests := []struct {
		ver  Version
		want string
	}{
		{V1_0, "1.0"},
		{V1_3, "1.3"},
		{V1_4, "1.4"},
		{V1_7, "1.7"},
		{V2_0, "2.0"},
		{Version(0), "pngread.Version(0)"},
	}
	for _, tt := range tests {
		if got := tt.ver.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
