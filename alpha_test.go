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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeparateAlphaRGB(t *testing.T) {
	// 2x2 pixels, RGB+alpha, with different filter bytes per row
	raw := []byte{
		1, 10, 11, 12, 100, 20, 21, 22, 101,
		2, 30, 31, 32, 102, 40, 41, 42, 103,
	}
	color, alpha, err := separateAlpha(raw, 2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	wantColor := []byte{
		1, 10, 11, 12, 20, 21, 22,
		2, 30, 31, 32, 40, 41, 42,
	}
	if diff := cmp.Diff(wantColor, color); diff != "" {
		t.Errorf("unexpected color buffer (-want +got):\n%s", diff)
	}

	wantAlpha := []byte{
		1, 100, 101,
		2, 102, 103,
	}
	if diff := cmp.Diff(wantAlpha, alpha); diff != "" {
		t.Errorf("unexpected alpha buffer (-want +got):\n%s", diff)
	}
}

func TestSeparateAlphaGray(t *testing.T) {
	// 3x1 pixels, gray+alpha
	raw := []byte{
		4, 10, 100, 20, 101, 30, 102,
	}
	color, alpha, err := separateAlpha(raw, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]byte{4, 10, 20, 30}, color); diff != "" {
		t.Errorf("unexpected color buffer (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{4, 100, 101, 102}, alpha); diff != "" {
		t.Errorf("unexpected alpha buffer (-want +got):\n%s", diff)
	}
}

func TestSeparateAlphaShort(t *testing.T) {
	raw := make([]byte, 2*(1+4*2)-1) // one byte short of two RGBA rows
	_, _, err := separateAlpha(raw, 2, 2, 3)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("got error %v, want ErrTruncated", err)
	}
}
