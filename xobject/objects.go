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

// Package xobject maps decoded PNG images to the dictionary entries of
// PDF image XObjects.
//
// The package does not write PDF files.  It produces the dictionaries
// which a PDF writer embeds, together with the compressed stream data
// already present on the [seehuhn.de/go/pngread.Image], and leaves
// object numbering and file layout to the writer.
package xobject

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Object represents a PDF object.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	s := "false"
	if x {
		s = "true"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for i := 0; i < len(x); i++ {
		c := x[i]
		if isRegular(c) && c != '#' {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(buf, "#%02x", c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// isRegular reports whether c is a regular character in the sense of
// the PDF syntax, i.e. neither white space nor a delimiter.
func isRegular(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return false
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return c >= 0x21 && c <= 0x7e
}

// String represents a raw string in a PDF file.  The palette lookup
// table of an indexed color space is one of these.
type String []byte

// PDF implements the [Object] interface.  Strings which are mostly
// printable are written in literal form, everything else in
// hexadecimal form.
func (x String) PDF(w io.Writer) error {
	funny := 0
	for _, c := range x {
		if c < 32 || c >= 127 || c == '(' || c == ')' || c == '\\' {
			funny++
		}
	}

	buf := &bytes.Buffer{}
	if 3*funny <= len(x) {
		buf.WriteByte('(')
		for _, c := range x {
			switch {
			case c == '(' || c == ')' || c == '\\':
				buf.WriteByte('\\')
				buf.WriteByte(c)
			case c == '\n':
				buf.WriteString(`\n`)
			case c == '\r':
				buf.WriteString(`\r`)
			case c < 32 || c >= 127:
				fmt.Fprintf(buf, `\%03o`, c)
			default:
				buf.WriteByte(c)
			}
		}
		buf.WriteByte(')')
	} else {
		fmt.Fprintf(buf, "<%x>", []byte(x))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Array represents an array of objects in a PDF file.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represents a dictionary object in a PDF file.
type Dict map[Name]Object

// PDF implements the [Object] interface.  Entries are written in
// sorted key order, so that output is deterministic.  Entries with nil
// values are omitted.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	keys := make([]Name, 0, len(x))
	for key := range x {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, name := range keys {
		val := x[name]
		if val == nil {
			continue
		}
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

// Reference represents a reference to an indirect object in a PDF
// file.  The lower 32 bits hold the object number, the next 16 bits
// the generation number.  The zero value is not a valid reference.
type Reference uint64

// NewReference creates a new reference object.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(number) | Reference(generation)<<32
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number(), x.Generation())
	return err
}

// Format returns the textual representation of obj, as it would appear
// in a PDF file.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
