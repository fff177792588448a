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

package glyphkit

import (
	"errors"
	"strconv"
)

// Precondition failures.  Operations return these before touching the font.
var (
	ErrNoFont       = errors.New("no font open")
	ErrNoSelection  = errors.New("no glyphs selected")
	ErrSingleMaster = errors.New("the font has only one master")
)

// ConflictError is returned when a glyph name is already in use.
type ConflictError struct {
	Name     string // the name which was requested
	Existing string // the name which is in use, if it differs from Name
}

func (err *ConflictError) Error() string {
	if err.Existing != "" && err.Existing != err.Name {
		return "glyph " + strconv.Quote(err.Name) + " conflicts with existing glyph " +
			strconv.Quote(err.Existing)
	}
	return "glyph " + strconv.Quote(err.Name) + " already exists"
}

// UnsupportedFormatError is returned when a font file has an extension
// which no reader knows about.
type UnsupportedFormatError struct {
	Ext string
}

func (err *UnsupportedFormatError) Error() string {
	ext := err.Ext
	if ext == "" {
		ext = "(none)"
	}
	return "unsupported format: " + ext
}

// MissingReaderError is returned when a font format is known, but no reader
// for the format has been registered.
type MissingReaderError struct {
	Format string
	Remedy string
}

func (err *MissingReaderError) Error() string {
	msg := "no reader available for " + err.Format + " files"
	if err.Remedy != "" {
		msg += " (" + err.Remedy + ")"
	}
	return msg
}

// ItemError records the failure of a single item of a batch operation.
// Batch operations collect these errors instead of aborting.
type ItemError struct {
	Item string
	Err  error
}

func (err *ItemError) Error() string {
	return err.Item + ": " + err.Err.Error()
}

func (err *ItemError) Unwrap() error {
	return err.Err
}
