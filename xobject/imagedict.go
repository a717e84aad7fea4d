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
	"errors"
	"fmt"

	"seehuhn.de/go/pngread"
)

// ImageDict builds the dictionary of the image XObject for img.  The
// stream body belonging to the dictionary is img.Data.
//
// If img carries a soft mask, smask must be the reference under which
// the writer embeds the dictionary built by [MaskDict]; otherwise
// smask must be zero.  A document containing the result must declare
// at least PDF version img.MinVersion.
func ImageDict(img *pngread.Image, smask Reference) (Dict, error) {
	if err := check(img); err != nil {
		return nil, err
	}
	if img.SMask == nil && smask != 0 {
		return nil, errors.New("smask reference given for image without soft mask")
	}
	if img.SMask != nil && smask == 0 {
		return nil, errors.New("missing smask reference for image with soft mask")
	}

	dict := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Integer(img.Width),
		"Height":           Integer(img.Height),
		"ColorSpace":       colorSpace(img),
		"BitsPerComponent": Integer(img.BitsPerComponent),
		"Filter":           Name(pngread.Filter),
		"DecodeParms":      decodeParms(img.DecodeParms),
	}
	if img.Transparency != nil {
		// color-key masking: a [min max] pair per component
		mask := make(Array, 0, 2*len(img.Transparency))
		for _, v := range img.Transparency {
			mask = append(mask, Integer(v), Integer(v))
		}
		dict["Mask"] = mask
	}
	if smask != 0 {
		dict["SMask"] = smask
	}
	return dict, nil
}

// MaskDict builds the dictionary of the soft-mask image XObject for
// img.  The stream body belonging to the dictionary is img.SMask.
func MaskDict(img *pngread.Image) (Dict, error) {
	if err := check(img); err != nil {
		return nil, err
	}
	if img.SMask == nil {
		return nil, errors.New("image has no soft mask")
	}

	return Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Integer(img.Width),
		"Height":           Integer(img.Height),
		"ColorSpace":       Name("DeviceGray"),
		"BitsPerComponent": Integer(img.BitsPerComponent),
		"Filter":           Name(pngread.Filter),
		"DecodeParms": decodeParms(pngread.DecodeParms{
			Predictor:        15,
			Colors:           1,
			BitsPerComponent: img.BitsPerComponent,
			Columns:          img.Width,
		}),
	}, nil
}

func colorSpace(img *pngread.Image) Object {
	if img.ColorSpace == pngread.Indexed {
		hival := len(img.Palette)/3 - 1
		return Array{
			Name("Indexed"),
			Name("DeviceRGB"),
			Integer(hival),
			String(img.Palette),
		}
	}
	return Name(img.ColorSpace.String())
}

func decodeParms(p pngread.DecodeParms) Dict {
	return Dict{
		"Predictor":        Integer(p.Predictor),
		"Colors":           Integer(p.Colors),
		"BitsPerComponent": Integer(p.BitsPerComponent),
		"Columns":          Integer(p.Columns),
	}
}

func check(img *pngread.Image) error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", img.Width, img.Height)
	}
	switch img.BitsPerComponent {
	case 1, 2, 4, 8:
		// pass
	default:
		return fmt.Errorf("invalid BitsPerComponent %d", img.BitsPerComponent)
	}
	if img.ColorSpace == pngread.Indexed {
		if len(img.Palette) == 0 || len(img.Palette)%3 != 0 {
			return fmt.Errorf("invalid palette length %d", len(img.Palette))
		}
	}
	return nil
}
