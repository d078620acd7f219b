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

package resource

import (
	"errors"

	"github.com/ulebule/pdf"
)

// PDF 2.0 sections: 8.4.5

// ExtGState is a graphics state parameter dictionary.
// Only parameters with a non-nil value are written.
type ExtGState struct {
	ref pdf.Reference

	// LineWidth (optional) is the line width in user space units.
	LineWidth *float64

	// StrokeAlpha (optional) is the constant alpha for stroking
	// operations, in the range 0 to 1.  This requires PDF 1.4.
	StrokeAlpha *float64

	// FillAlpha (optional) is the constant alpha for non-stroking
	// operations, in the range 0 to 1.  This requires PDF 1.4.
	FillAlpha *float64
}

var _ Object = (*ExtGState)(nil)

// NewExtGState allocates a new, empty graphics state parameter dictionary.
func NewExtGState(a pdf.Allocator) *ExtGState {
	return &ExtGState{ref: a.Alloc()}
}

// Ref implements the [pdf.IndirectObject] interface.
func (gs *ExtGState) Ref() pdf.Reference {
	return gs.ref
}

// Category implements the [Object] interface.
func (gs *ExtGState) Category() Category {
	return CatExtGState
}

// Embed implements the [Object] interface.
func (gs *ExtGState) Embed(w pdf.Putter) error {
	if err := pdf.CheckVersion(w, "ExtGState resources", pdf.V1_2); err != nil {
		return err
	}

	dict := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
	}
	if gs.LineWidth != nil {
		if *gs.LineWidth < 0 {
			return errors.New("negative line width")
		}
		dict["LW"] = pdf.Real(*gs.LineWidth)
	}
	if gs.StrokeAlpha != nil || gs.FillAlpha != nil {
		if err := pdf.CheckVersion(w, "constant alpha", pdf.V1_4); err != nil {
			return err
		}
	}
	if gs.StrokeAlpha != nil {
		if *gs.StrokeAlpha < 0 || *gs.StrokeAlpha > 1 {
			return errors.New("stroke alpha out of range")
		}
		dict["CA"] = pdf.Real(*gs.StrokeAlpha)
	}
	if gs.FillAlpha != nil {
		if *gs.FillAlpha < 0 || *gs.FillAlpha > 1 {
			return errors.New("fill alpha out of range")
		}
		dict["ca"] = pdf.Real(*gs.FillAlpha)
	}

	return w.Put(gs.ref, dict)
}
