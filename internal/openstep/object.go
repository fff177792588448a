// seehuhn.de/go/glyphkit - batch transformations for font glyph sets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package openstep reads property lists in the OpenStep (ASCII) format,
// as used by the Glyphs font editor.
package openstep

import (
	"strconv"
)

// Object is one of Dict, Array, String or Data.
type Object interface {
	isObject()
}

// Dict is a dictionary with string keys.
type Dict map[string]Object

// Array is a list of objects.
type Array []Object

// String is a quoted or unquoted string.  Numbers are represented as
// unquoted strings.
type String string

// Data holds the bytes of a <...> hex block.
type Data []byte

func (Dict) isObject()   {}
func (Array) isObject()  {}
func (String) isObject() {}
func (Data) isObject()   {}

// GetString returns the string stored under key, or "" if the key is
// missing or holds a different type.
func (d Dict) GetString(key string) string {
	s, _ := d[key].(String)
	return string(s)
}

// GetDict returns the dictionary stored under key, or nil.
func (d Dict) GetDict(key string) Dict {
	x, _ := d[key].(Dict)
	return x
}

// GetArray returns the array stored under key, or nil.
func (d Dict) GetArray(key string) Array {
	x, _ := d[key].(Array)
	return x
}

// GetFloat returns the number stored under key.
func (d Dict) GetFloat(key string) (float64, bool) {
	return Float(d[key])
}

// GetInt returns the integer stored under key.
func (d Dict) GetInt(key string) (int, bool) {
	s, ok := d[key].(String)
	if !ok {
		return 0, false
	}
	x, err := strconv.Atoi(string(s))
	if err != nil {
		return 0, false
	}
	return x, true
}

// Float converts a string object to a number.
func Float(obj Object) (float64, bool) {
	s, ok := obj.(String)
	if !ok {
		return 0, false
	}
	x, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, false
	}
	return x, true
}
