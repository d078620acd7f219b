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

// Package oc implements optional content, also known as layers.
//
// An optional content group ([Layer]) is a collection of graphics which can
// be shown or hidden by the viewer.  The layers of a document are
// registered with a single [Layers] object, which also records how the
// layers are presented in the viewer's layer panel and which layers are
// mutually exclusive.  At the end of document construction,
// [Layers.CreateDictionary] produces the /OCProperties entry of the
// document catalog.
package oc

import (
	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/resource"
)

// Conditional is an optional content element which can be used to mark
// content in a content stream.  This is either a [*Layer] or a
// [*Membership].
type Conditional interface {
	resource.Object

	// IsVisible reports whether content marked with this element is
	// visible, given the visibility state of all layers.
	IsVisible(states map[*Layer]bool) bool
}

var (
	_ Conditional = (*Layer)(nil)
	_ Conditional = (*Membership)(nil)
)

func onOff(on bool) pdf.Name {
	if on {
		return "ON"
	}
	return "OFF"
}
