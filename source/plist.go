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

package source

import (
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"seehuhn.de/go/glyphkit/internal/openstep"
)

// readXMLPlistFile reads an XML property list.  The values are returned
// as [openstep.Object]s, so that both plist flavours can be handled by the
// same code.  Booleans become the strings "1" and "0".
func readXMLPlistFile(fname string) (openstep.Object, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readXMLPlist(fd)
}

func readXMLPlist(r io.Reader) (openstep.Object, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New("empty property list")
		} else if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local == "plist" {
			continue
		}
		return decodePlistValue(dec, start)
	}
}

func decodePlistValue(dec *xml.Decoder, start xml.StartElement) (openstep.Object, error) {
	switch start.Name.Local {
	case "dict":
		dict := openstep.Dict{}
		var key string
		haveKey := false
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch tok := tok.(type) {
			case xml.StartElement:
				if tok.Name.Local == "key" {
					if err := dec.DecodeElement(&key, &tok); err != nil {
						return nil, err
					}
					haveKey = true
					continue
				}
				if !haveKey {
					return nil, fmt.Errorf("plist: <%s> without key", tok.Name.Local)
				}
				val, err := decodePlistValue(dec, tok)
				if err != nil {
					return nil, err
				}
				dict[key] = val
				haveKey = false
			case xml.EndElement:
				return dict, nil
			}
		}
	case "array":
		array := openstep.Array{}
		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			switch tok := tok.(type) {
			case xml.StartElement:
				val, err := decodePlistValue(dec, tok)
				if err != nil {
					return nil, err
				}
				array = append(array, val)
			case xml.EndElement:
				return array, nil
			}
		}
	case "string", "integer", "real", "date":
		var s string
		if err := dec.DecodeElement(&s, &start); err != nil {
			return nil, err
		}
		if start.Name.Local != "string" {
			s = strings.TrimSpace(s)
		}
		return openstep.String(s), nil
	case "true", "false":
		if err := dec.Skip(); err != nil {
			return nil, err
		}
		if start.Name.Local == "true" {
			return openstep.String("1"), nil
		}
		return openstep.String("0"), nil
	case "data":
		var s string
		if err := dec.DecodeElement(&s, &start); err != nil {
			return nil, err
		}
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
		if err != nil {
			return nil, err
		}
		return openstep.Data(data), nil
	default:
		return nil, fmt.Errorf("plist: unexpected element <%s>", start.Name.Local)
	}
}
