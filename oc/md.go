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

// PDF 2.0 sections: 8.11.2.2

// Policy is the visibility policy of a [Membership].
type Policy pdf.Name

// These are the supported visibility policies.
const (
	// PolicyAnyOn means visible if any of the layers is on.  This is
	// the default.
	PolicyAnyOn Policy = "AnyOn"

	// PolicyAllOn means visible only if all layers are on.
	PolicyAllOn Policy = "AllOn"

	// PolicyAnyOff means visible if any of the layers is off.
	PolicyAnyOff Policy = "AnyOff"

	// PolicyAllOff means visible only if all layers are off.
	PolicyAllOff Policy = "AllOff"
)

// Membership represents an optional content membership dictionary.  Content
// marked with a Membership is visible depending on the states of several
// layers.
type Membership struct {
	ref pdf.Reference

	// Layers are the layers whose states determine the visibility.
	Layers []*Layer

	// Policy is the visibility policy.  The zero value means
	// [PolicyAnyOn].
	Policy Policy
}

// NewMembership allocates a new membership dictionary.
func NewMembership(a pdf.Allocator, policy Policy, layers ...*Layer) *Membership {
	return &Membership{
		ref:    a.Alloc(),
		Layers: layers,
		Policy: policy,
	}
}

// Ref implements the [pdf.IndirectObject] interface.
func (m *Membership) Ref() pdf.Reference {
	return m.ref
}

// Category implements the [resource.Object] interface.
func (m *Membership) Category() resource.Category {
	return resource.CatProperties
}

// Resources returns the layers referenced by the membership dictionary.
// This implements the [resource.Container] interface, so that the layers
// are written together with the membership dictionary.
func (m *Membership) Resources() []resource.Object {
	res := make([]resource.Object, len(m.Layers))
	for i, layer := range m.Layers {
		res[i] = layer
	}
	return res
}

// Embed writes the membership dictionary.
// This implements the [resource.Object] interface.
func (m *Membership) Embed(w pdf.Putter) error {
	if err := pdf.CheckVersion(w, "optional content membership", pdf.V1_5); err != nil {
		return err
	}

	for _, layer := range m.Layers {
		if layer.ref == 0 {
			return errors.New("membership refers to an unregistered layer")
		}
	}

	dict := pdf.Dict{
		"Type": pdf.Name("OCMD"),
	}

	switch len(m.Layers) {
	case 0:
		// no /OCGs entry: the membership has no effect
	case 1:
		dict["OCGs"] = m.Layers[0].ref
	default:
		dict["OCGs"] = pdf.RefArray(m.Layers)
	}
	switch m.Policy {
	case "", PolicyAnyOn:
		// default
	case PolicyAllOn, PolicyAnyOff, PolicyAllOff:
		dict["P"] = pdf.Name(m.Policy)
	default:
		return errors.New("invalid membership policy " + string(m.Policy))
	}

	return w.Put(m.ref, dict)
}

// IsVisible implements the [Conditional] interface.
func (m *Membership) IsVisible(states map[*Layer]bool) bool {
	if len(m.Layers) == 0 {
		return true
	}

	switch m.Policy {
	case PolicyAllOn:
		for _, layer := range m.Layers {
			if !layer.IsVisible(states) {
				return false
			}
		}
		return true
	case PolicyAnyOff:
		for _, layer := range m.Layers {
			if !layer.IsVisible(states) {
				return true
			}
		}
		return false
	case PolicyAllOff:
		for _, layer := range m.Layers {
			if layer.IsVisible(states) {
				return false
			}
		}
		return true
	default: // PolicyAnyOn
		for _, layer := range m.Layers {
			if layer.IsVisible(states) {
				return true
			}
		}
		return false
	}
}
