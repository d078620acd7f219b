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

package oc

import (
	"errors"

	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/resource"
)

// PDF 2.0 sections: 8.11.2

// State is the initial visibility state of a layer.
type State int

// These are the possible layer states.  The zero value is On.
const (
	On State = iota
	Off
)

func (s State) String() string {
	switch s {
	case On:
		return "ON"
	case Off:
		return "OFF"
	default:
		return "oc.State(?)"
	}
}

// Layer represents an optional content group.
//
// Layers are created using [Layers.NewLayer], or by calling
// [Layers.AddLayer] on a new Layer value.  The layer's object number is
// assigned at that time and never changes.
type Layer struct {
	ref   pdf.Reference
	owner *Layers

	// Name is the name of the layer, as shown in the viewer's layer panel.
	Name string

	// State is the visibility of the layer when the document is opened.
	//
	// If the layer is a member of a radio-button group with more than one
	// visible member, [Layers.CreateDictionary] changes the state of all
	// but the first visible member to Off.
	State State

	// Locked layers cannot be toggled in the viewer.
	Locked bool

	// RadioButton, if not empty, is the name of a radio-button group.
	// At most one layer of a radio-button group is visible at any time.
	// A group with only one member has no effect.
	RadioButton string

	// Intent (optional) represents the intended use of the graphics in the
	// layer.  If this is empty, the default intent /View is used.
	Intent []pdf.Name

	// Usage (optional) describes the nature of the content controlled by
	// the layer.
	Usage *Usage
}

// Ref implements the [pdf.IndirectObject] interface.
func (l *Layer) Ref() pdf.Reference {
	return l.ref
}

// Category implements the [resource.Object] interface.
// Layers are listed in the /Properties sub-dictionary.
func (l *Layer) Category() resource.Category {
	return resource.CatProperties
}

// IsVisible implements the [Conditional] interface.
func (l *Layer) IsVisible(states map[*Layer]bool) bool {
	if visible, ok := states[l]; ok {
		return visible
	}
	return l.State == On
}

// Embed writes the optional content group dictionary.
// This implements the [resource.Object] interface.
func (l *Layer) Embed(w pdf.Putter) error {
	if l.ref == 0 {
		return errors.New("layer is not registered")
	}
	if l.Name == "" {
		return errors.New("layer name is required")
	}
	if err := pdf.CheckVersion(w, "optional content", pdf.V1_5); err != nil {
		return err
	}

	dict := pdf.Dict{
		"Type": pdf.Name("OCG"),
		"Name": pdf.TextString(l.Name),
	}

	switch len(l.Intent) {
	case 0:
		// use the default, /View
	case 1:
		if l.Intent[0] != "View" {
			dict["Intent"] = l.Intent[0]
		}
	default:
		intent := make(pdf.Array, len(l.Intent))
		for i, name := range l.Intent {
			intent[i] = name
		}
		dict["Intent"] = intent
	}

	if l.Usage != nil {
		usage, err := l.Usage.asDict()
		if err != nil {
			return err
		}
		dict["Usage"] = usage
	}

	return w.Put(l.ref, dict)
}
