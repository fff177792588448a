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

package openstep

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"
)

const (
	scannerBufSize = 1024
	maxDepth       = 512
)

// SyntaxError indicates that the input is not a valid property list.
type SyntaxError struct {
	Pos int64
	Err error
}

func (err *SyntaxError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed property list" + middle +
		" (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// ReadFile reads a property list from a file.
func ReadFile(fname string) (Object, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// Read reads a property list.  Only white space and comments may follow
// the top-level object.
func Read(r io.Reader) (Object, error) {
	s := &scanner{
		r:   r,
		buf: make([]byte, scannerBufSize),
	}
	obj, err := s.readObject(0)
	if err != nil {
		return nil, err
	}
	err = s.skipWhiteSpace()
	if err != nil {
		return nil, err
	}
	buf, err := s.peek(1)
	if err != nil {
		return nil, err
	}
	if len(buf) > 0 {
		return nil, s.errorf("unexpected %q after end of property list", buf[0])
	}
	return obj, nil
}

type scanner struct {
	r         io.Reader
	buf       []byte
	used, pos int
	total     int64
}

func (s *scanner) filePos() int64 {
	return s.total + int64(s.pos)
}

func (s *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: s.filePos(), Err: fmt.Errorf(format, args...)}
}

func (s *scanner) readObject(depth int) (Object, error) {
	if depth > maxDepth {
		return nil, s.errorf("nesting too deep")
	}

	err := s.skipWhiteSpace()
	if err != nil {
		return nil, err
	}
	buf, err := s.peek(1)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, &SyntaxError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
	}

	switch c := buf[0]; {
	case c == '{':
		s.pos++
		return s.readDict(depth)
	case c == '(':
		s.pos++
		return s.readArray(depth)
	case c == '"' || c == '\'':
		s.pos++
		return s.readQuotedString(c)
	case c == '<':
		s.pos++
		return s.readData()
	case isTokenChar(c):
		return s.readToken()
	default:
		return nil, s.errorf("unexpected %q", c)
	}
}

// readDict reads a dictionary, starting after the opening "{".
func (s *scanner) readDict(depth int) (Dict, error) {
	dict := make(Dict)
	for {
		err := s.skipWhiteSpace()
		if err != nil {
			return nil, err
		}
		buf, err := s.peek(1)
		if err != nil {
			return nil, err
		}
		if len(buf) == 0 {
			return nil, &SyntaxError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
		}
		if buf[0] == '}' {
			s.pos++
			return dict, nil
		}

		keyObj, err := s.readObject(depth + 1)
		if err != nil {
			return nil, err
		}
		key, ok := keyObj.(String)
		if !ok {
			return nil, s.errorf("dictionary key must be a string")
		}

		err = s.expect('=')
		if err != nil {
			return nil, err
		}
		val, err := s.readObject(depth + 1)
		if err != nil {
			return nil, err
		}
		dict[string(key)] = val

		err = s.skipWhiteSpace()
		if err != nil {
			return nil, err
		}
		buf, err = s.peek(1)
		if err != nil {
			return nil, err
		}
		switch {
		case len(buf) > 0 && buf[0] == ';':
			s.pos++
		case len(buf) > 0 && buf[0] == '}':
			// the last entry may omit the ";"
		default:
			return nil, s.errorf("expected \";\" after value of %q", key)
		}
	}
}

// readArray reads an array, starting after the opening "(".
func (s *scanner) readArray(depth int) (Array, error) {
	array := Array{}
	for {
		err := s.skipWhiteSpace()
		if err != nil {
			return nil, err
		}
		buf, err := s.peek(1)
		if err != nil {
			return nil, err
		}
		if len(buf) == 0 {
			return nil, &SyntaxError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
		}
		if buf[0] == ')' {
			s.pos++
			return array, nil
		}

		obj, err := s.readObject(depth + 1)
		if err != nil {
			return nil, err
		}
		array = append(array, obj)

		err = s.skipWhiteSpace()
		if err != nil {
			return nil, err
		}
		buf, err = s.peek(1)
		if err != nil {
			return nil, err
		}
		switch {
		case len(buf) > 0 && buf[0] == ',':
			s.pos++
		case len(buf) > 0 && buf[0] == ')':
			// pass
		default:
			return nil, s.errorf("expected \",\" or \")\" in array")
		}
	}
}

// readQuotedString reads a quoted string, starting after the opening quote.
func (s *scanner) readQuotedString(quote byte) (String, error) {
	var res []byte
	escape := false
	closed := false
	octal := 0
	var octalVal byte
	hex := -1
	var hexVal rune
	err := s.scanBytes(func(c byte) bool {
		if octal > 0 {
			if c >= '0' && c <= '7' {
				octalVal = octalVal*8 + (c - '0')
				octal--
				if octal == 0 {
					res = append(res, octalVal)
				}
				return true
			}
			res = append(res, octalVal)
			octal = 0
		}
		if hex >= 0 {
			if d, ok := hexDigit(c); ok && hex < 4 {
				hexVal = hexVal*16 + rune(d)
				hex++
				if hex == 4 {
					res = utf8.AppendRune(res, hexVal)
					hex = -1
				}
				return true
			}
			res = utf8.AppendRune(res, hexVal)
			hex = -1
		}
		if escape {
			escape = false
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case 'a':
				c = '\a'
			case 'v':
				c = '\v'
			case 'U', 'u':
				hex = 0
				hexVal = 0
				return true
			}
			if c >= '0' && c <= '7' {
				octal = 2
				octalVal = c - '0'
				return true
			}
		} else if c == '\\' {
			escape = true
			return true
		} else if c == quote {
			closed = true
			return false
		}
		res = append(res, c)
		return true
	})
	if err != nil {
		return "", err
	}
	if !closed {
		return "", &SyntaxError{Pos: s.filePos(), Err: io.ErrUnexpectedEOF}
	}
	s.pos++ // we have already seen the closing quote
	return String(res), nil
}

// readData reads a <>-delimited hex block, starting after the "<".
func (s *scanner) readData() (Data, error) {
	res := Data{}
	var hexVal byte
	first := true
	closed := false
	bad := false
	err := s.scanBytes(func(c byte) bool {
		if c == '>' {
			closed = true
			return false
		}
		if isSpace(c) {
			return true
		}
		d, ok := hexDigit(c)
		if !ok {
			bad = true
			return false
		}
		if first {
			hexVal = d
		} else {
			res = append(res, 16*hexVal+d)
		}
		first = !first
		return true
	})
	if err != nil {
		return nil, err
	}
	if bad || !closed || !first {
		return nil, s.errorf("malformed data block")
	}
	s.pos++
	return res, nil
}

func (s *scanner) readToken() (String, error) {
	var res []byte
	err := s.scanBytes(func(c byte) bool {
		if !isTokenChar(c) {
			return false
		}
		res = append(res, c)
		return true
	})
	if err != nil {
		return "", err
	}
	return String(res), nil
}

func (s *scanner) expect(c byte) error {
	err := s.skipWhiteSpace()
	if err != nil {
		return err
	}
	buf, err := s.peek(1)
	if err != nil {
		return err
	}
	if len(buf) == 0 || buf[0] != c {
		return s.errorf("expected %q", c)
	}
	s.pos++
	return nil
}

// skipWhiteSpace skips white space and comments.
func (s *scanner) skipWhiteSpace() error {
	for {
		err := s.scanBytes(isSpace)
		if err != nil {
			return err
		}
		buf, err := s.peek(2)
		if err != nil {
			return err
		}
		if len(buf) < 2 || buf[0] != '/' {
			return nil
		}
		switch buf[1] {
		case '/':
			s.pos += 2
			err = s.scanBytes(func(c byte) bool { return c != '\n' })
		case '*':
			s.pos += 2
			err = s.skipAfter("*/")
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// refill discards the read part of the buffer and reads as much new data as
// possible.  At the end of the input, s.used will be smaller than the
// buffer size, but no error will be returned.
func (s *scanner) refill() error {
	s.total += int64(s.pos)
	copy(s.buf, s.buf[s.pos:s.used])
	s.used -= s.pos
	s.pos = 0

	n, err := io.ReadFull(s.r, s.buf[s.used:])
	s.used += n

	if s.used > 0 || err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	return err
}

// peek returns a view of the next n bytes of input.  At the end of the
// input, a short buffer without an error is returned.
func (s *scanner) peek(n int) ([]byte, error) {
	if n > scannerBufSize {
		panic("peek window too large")
	}

	var err error
	if s.pos+n > s.used {
		err = s.refill()
	}
	if s.pos+n > s.used {
		return s.buf[s.pos:s.used], err
	}
	return s.buf[s.pos : s.pos+n], nil
}

// scanBytes consumes input bytes as long as accept returns true.
func (s *scanner) scanBytes(accept func(c byte) bool) error {
	for {
		for s.pos < s.used {
			if !accept(s.buf[s.pos]) {
				return nil
			}
			s.pos++
		}
		err := s.refill()
		if err != nil {
			return err
		}
		if s.used == 0 {
			return nil
		}
	}
}

func (s *scanner) skipAfter(pat string) error {
	patBytes := []byte(pat)
	n := len(patBytes)
	for {
		idx := bytes.Index(s.buf[s.pos:s.used], patBytes)
		if idx >= 0 {
			s.pos += idx + n
			return nil
		}
		// keep a possible partial match at the end of the buffer
		keep := min(n-1, s.used-s.pos)
		s.pos = s.used - keep
		err := s.refill()
		if err != nil {
			return err
		}
		if s.used == keep {
			return &SyntaxError{
				Pos: s.filePos(),
				Err: errors.New("unterminated comment"),
			}
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == '-', c == '+', c == '$', c == '/', c == ':':
		return true
	}
	return c >= 0x80
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
