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

package xobject

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pngread"
)

func TestImageDictRGB(t *testing.T) {
	img := &pngread.Image{
		Width:            4,
		Height:           2,
		ColorSpace:       pngread.DeviceRGB,
		BitsPerComponent: 8,
		DecodeParms: pngread.DecodeParms{
			Predictor:        15,
			Colors:           3,
			BitsPerComponent: 8,
			Columns:          4,
		},
		Transparency: []int{1, 2, 3},
		Data:         []byte{1, 2, 3},
		MinVersion:   pngread.V1_3,
	}

	dict, err := ImageDict(img, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Integer(4),
		"Height":           Integer(2),
		"ColorSpace":       Name("DeviceRGB"),
		"BitsPerComponent": Integer(8),
		"Filter":           Name("FlateDecode"),
		"DecodeParms": Dict{
			"Predictor":        Integer(15),
			"Colors":           Integer(3),
			"BitsPerComponent": Integer(8),
			"Columns":          Integer(4),
		},
		"Mask": Array{
			Integer(1), Integer(1),
			Integer(2), Integer(2),
			Integer(3), Integer(3),
		},
	}
	if diff := cmp.Diff(want, dict); diff != "" {
		t.Errorf("unexpected dictionary (-want +got):\n%s", diff)
	}
}

func TestImageDictIndexed(t *testing.T) {
	img := &pngread.Image{
		Width:            2,
		Height:           2,
		ColorSpace:       pngread.Indexed,
		BitsPerComponent: 8,
		DecodeParms: pngread.DecodeParms{
			Predictor:        15,
			Colors:           1,
			BitsPerComponent: 8,
			Columns:          2,
		},
		Palette: []byte{10, 20, 30},
		Data:    []byte{1},
	}

	dict, err := ImageDict(img, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := Format(dict["ColorSpace"])
	want := "[/Indexed /DeviceRGB 0 <0a141e>]"
	if got != want {
		t.Errorf("got color space %q, want %q", got, want)
	}
}

func TestImageDictWithMask(t *testing.T) {
	img := &pngread.Image{
		Width:            3,
		Height:           5,
		ColorSpace:       pngread.DeviceRGB,
		BitsPerComponent: 8,
		DecodeParms: pngread.DecodeParms{
			Predictor:        15,
			Colors:           3,
			BitsPerComponent: 8,
			Columns:          3,
		},
		Data:       []byte{1},
		SMask:      []byte{2},
		MinVersion: pngread.V1_4,
	}

	ref := NewReference(5, 0)
	dict, err := ImageDict(img, ref)
	if err != nil {
		t.Fatal(err)
	}
	if dict["SMask"] != ref {
		t.Errorf("got SMask entry %v, want %v", dict["SMask"], ref)
	}

	maskDict, err := MaskDict(img)
	if err != nil {
		t.Fatal(err)
	}
	want := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Integer(3),
		"Height":           Integer(5),
		"ColorSpace":       Name("DeviceGray"),
		"BitsPerComponent": Integer(8),
		"Filter":           Name("FlateDecode"),
		"DecodeParms": Dict{
			"Predictor":        Integer(15),
			"Colors":           Integer(1),
			"BitsPerComponent": Integer(8),
			"Columns":          Integer(3),
		},
	}
	if diff := cmp.Diff(want, maskDict); diff != "" {
		t.Errorf("unexpected mask dictionary (-want +got):\n%s", diff)
	}
}

func TestImageDictErrors(t *testing.T) {
	valid := func() *pngread.Image {
		return &pngread.Image{
			Width:            2,
			Height:           2,
			ColorSpace:       pngread.DeviceGray,
			BitsPerComponent: 8,
			Data:             []byte{1},
		}
	}

	img := valid()
	if _, err := ImageDict(img, NewReference(1, 0)); err == nil {
		t.Error("missing error for smask reference without soft mask")
	}

	img = valid()
	img.SMask = []byte{2}
	if _, err := ImageDict(img, 0); err == nil {
		t.Error("missing error for soft mask without smask reference")
	}
	if _, err := MaskDict(valid()); err == nil {
		t.Error("missing error for MaskDict without soft mask")
	}

	img = valid()
	img.Width = 0
	if _, err := ImageDict(img, 0); err == nil {
		t.Error("missing error for zero width")
	}

	img = valid()
	img.BitsPerComponent = 3
	if _, err := ImageDict(img, 0); err == nil {
		t.Error("missing error for invalid bit depth")
	}

	img = valid()
	img.ColorSpace = pngread.Indexed
	img.Palette = []byte{1, 2, 3, 4}
	if _, err := ImageDict(img, 0); err == nil {
		t.Error("missing error for invalid palette length")
	}
}
