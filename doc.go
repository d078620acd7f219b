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

// Package pdf provides support for writing PDF files.
//
// This package treats PDF files as containers containing a sequence of
// objects (typically Dictionaries and Streams).  Objects are written
// sequentially, each at a reference obtained from [Writer.Alloc].
//
// A [Writer] can be used to write objects to a new PDF file:
//
//	w, err := pdf.Create("out.pdf", pdf.V1_7, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	... add objects to the document using w.Put() and w.OpenStream() ...
//
//	err = w.Close(pdf.Dict{
//	    "Pages": pages,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	String
//
// Subpackages assemble complete documents from pages, content streams,
// resources and layers (optional content).  Most users will want to start
// with the document package.
package pdf
