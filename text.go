// github.com/ulebule/pdf - a library for assembling PDF files
// Copyright (C) 2026  The ulebule/pdf Authors
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

package pdf

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16BOM = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// TextString creates a String object using the "text string" encoding.
// Strings which consist of printable ASCII characters only are stored
// as they are, since PDFDocEncoding agrees with ASCII on this range.
// All other strings are encoded as UTF-16BE with a byte order mark.
func TextString(s string) String {
	if isPlainASCII(s) {
		return String(s)
	}
	buf, err := utf16BOM.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 is replaced by the encoder, so this is unreachable
		// for all practical purposes
		return String(s)
	}
	return String(buf)
}

// AsTextString interprets x as a PDF "text string" and returns the
// corresponding UTF-8 encoded string.
func (x String) AsTextString() string {
	if len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF {
		buf, err := utf16BOM.NewDecoder().Bytes(x)
		if err == nil {
			return string(buf)
		}
	}
	return string(x)
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 0x20 || c > 0x7e) && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}
