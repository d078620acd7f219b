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
	"compress/zlib"
	"io"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Info returns the /Filter name and the /DecodeParms dictionary
	// (which may be nil) describing the filter.
	Info() (Name, Dict)

	// Encode returns a writer which encodes data written to it and
	// writes the result to w.  Closing the returned writer must flush all
	// data, but must not close w.
	Encode(w io.Writer) (io.WriteCloser, error)
}

// FilterFlate is the /FlateDecode filter.
type FilterFlate struct {
	// Level is the zlib compression level.  The zero value selects
	// zlib.DefaultCompression.
	Level int
}

// Info implements the [Filter] interface.
func (f FilterFlate) Info() (Name, Dict) {
	return "FlateDecode", nil
}

// Encode implements the [Filter] interface.
func (f FilterFlate) Encode(w io.Writer) (io.WriteCloser, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	return zlib.NewWriterLevel(w, level)
}

// filterInfo returns the /Filter and /DecodeParms entries for a chain of
// filters.  The first filter in the list is the first one a reader has to
// apply when decoding the stream.
func filterInfo(filters []Filter) (Object, Object) {
	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		name, parms := filters[0].Info()
		if parms == nil {
			return name, nil
		}
		return name, parms
	}

	var names, parms Array
	hasParms := false
	for _, f := range filters {
		name, p := f.Info()
		names = append(names, name)
		if p != nil {
			hasParms = true
			parms = append(parms, p)
		} else {
			parms = append(parms, nil)
		}
	}
	if !hasParms {
		return names, nil
	}
	return names, parms
}
