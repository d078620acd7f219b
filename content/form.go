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

package content

import (
	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/resource"
	"seehuhn.de/go/geom/rect"
)

// PDF 2.0 sections: 8.10

// Form is a form XObject: a self-contained content stream which can be
// drawn by other content streams.  A form is never page content.
type Form struct {
	*Stream

	// BBox is the bounding box of the form, in form space.
	BBox rect.Rect
}

var (
	_ resource.Object    = (*Form)(nil)
	_ resource.Container = (*Form)(nil)
)

// NewForm allocates a new, empty form XObject.
func NewForm(a pdf.Allocator, bbox rect.Rect) *Form {
	return &Form{
		Stream: NewStream(a),
		BBox:   bbox,
	}
}

// Category implements the [resource.Object] interface.
func (f *Form) Category() resource.Category {
	return resource.CatXObject
}

// Embed writes the form XObject, including its resource dictionary.
// The resources themselves are not written.
//
// This implements the [resource.Object] interface.
func (f *Form) Embed(w pdf.Putter) error {
	res, err := resource.Build(f.resources)
	if err != nil {
		return err
	}
	dict := pdf.Dict{
		"Type":      pdf.Name("XObject"),
		"Subtype":   pdf.Name("Form"),
		"BBox":      pdf.Rectangle(f.BBox),
		"Resources": res,
	}
	return f.embed(w, dict)
}
