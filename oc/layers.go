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
	"fmt"
	"slices"
	"strings"

	"github.com/ulebule/pdf"
)

// PDF 2.0 sections: 8.11.4.2 8.11.4.3

// ListMode specifies which layers are shown in the viewer's layer panel.
type ListMode int

// These are the supported list modes.
const (
	// AllPages lists all layers of the document.
	AllPages ListMode = iota

	// VisiblePages lists only the layers referenced by visible pages.
	VisiblePages
)

func (m ListMode) String() string {
	switch m {
	case AllPages:
		return "AllPages"
	case VisiblePages:
		return "VisiblePages"
	default:
		return fmt.Sprintf("oc.ListMode(%d)", int(m))
	}
}

// Layers is the registry of all layers of a document.
//
// Layers are serialized in creation order.  The presentation of the layers
// in the viewer's layer panel can be changed using [Layers.DisplayOrder],
// [Layers.DisplayOrderStartGroup] and [Layers.DisplayOrderEndGroup].
//
// A document has at most one Layers object.
type Layers struct {
	alloc pdf.Allocator

	// Name is the name of the default configuration.
	Name string

	// ListMode selects which layers are shown in the layer panel.
	ListMode ListMode

	layers []*Layer
	order  []orderToken
}

type tokenKind uint8

const (
	tokenLayer tokenKind = iota
	tokenGroupStart
	tokenGroupEnd
)

// orderToken is one entry of the display order.  The layer field is only
// used for tokenLayer, the label only for tokenGroupStart.
type orderToken struct {
	kind  tokenKind
	layer *Layer
	label string
}

// NewLayers creates a new, empty layer registry.  Object numbers for the
// layers are allocated using a.
//
// Most callers should use the NewLayers method of the document, which
// ensures that a document has only one registry.
func NewLayers(a pdf.Allocator, name string) *Layers {
	return &Layers{
		alloc: a,
		Name:  name,
	}
}

// NewLayer creates a new layer with the given name and adds it to the
// registry.  The new layer is visible and not locked.
func (l *Layers) NewLayer(name string) *Layer {
	layer := &Layer{Name: name}
	l.register(layer)
	return layer
}

// AddLayer adds a layer to the registry and assigns its object number.
// A layer can only be added once.
func (l *Layers) AddLayer(layer *Layer) error {
	if layer.owner != nil {
		return fmt.Errorf("layer %q is already registered", layer.Name)
	}
	l.register(layer)
	return nil
}

func (l *Layers) register(layer *Layer) {
	layer.ref = l.alloc.Alloc()
	layer.owner = l
	l.layers = append(l.layers, layer)
}

// All returns the layers in the registry, in creation order.
func (l *Layers) All() []*Layer {
	return slices.Clone(l.layers)
}

// DisplayOrder appends a layer to the display order, inside the
// innermost open group.
func (l *Layers) DisplayOrder(layer *Layer) {
	l.order = append(l.order, orderToken{kind: tokenLayer, layer: layer})
}

// DisplayOrderStartGroup opens a new group in the display order.
// If label is not empty, it is shown as the title of the group.
// Every group must be closed using [Layers.DisplayOrderEndGroup].
func (l *Layers) DisplayOrderStartGroup(label string) {
	l.order = append(l.order, orderToken{kind: tokenGroupStart, label: label})
}

// DisplayOrderEndGroup closes the innermost open group of the display
// order.
func (l *Layers) DisplayOrderEndGroup() {
	l.order = append(l.order, orderToken{kind: tokenGroupEnd})
}

// CreateDictionary returns the optional content properties dictionary,
// for use as the /OCProperties entry of the document catalog.
// If no layers have been created, the result is nil.
//
// As a side effect, the states of the layers are updated so that at most
// one layer of each radio-button group is visible: within each group,
// ordered by group name, the first visible layer stays On and all later
// visible layers are switched Off.
//
// If the display order contains unbalanced groups, or refers to a layer
// which is not registered here, an [*OrderError] is returned and no layer
// state is changed.
func (l *Layers) CreateDictionary() (pdf.Dict, error) {
	if len(l.layers) == 0 {
		return nil, nil
	}

	all := pdf.RefArray(l.layers)

	order, err := l.buildOrder()
	if err != nil {
		return nil, err
	}
	if order == nil {
		order = slices.Clone(all)
	}

	config := pdf.Dict{
		"Name":     pdf.TextString(l.Name),
		"ListMode": pdf.Name(l.ListMode.String()),
		"Order":    order,
	}

	if locked := l.filter(func(layer *Layer) bool { return layer.Locked }); len(locked) > 0 {
		config["Locked"] = locked
	}

	// This must come before the /OFF array is built, since radio-button
	// groups may switch layers off.
	if rbGroups := l.radioButtonGroups(); len(rbGroups) > 0 {
		config["RBGroups"] = rbGroups
	}

	if off := l.filter(func(layer *Layer) bool { return layer.State == Off }); len(off) > 0 {
		config["OFF"] = off
	}

	res := pdf.Dict{
		"OCGs": all,
		"D":    config,
	}
	return res, nil
}

// States returns the visibility of every layer.  After
// [Layers.CreateDictionary] has been called, this reflects the state
// changes caused by radio-button groups.
func (l *Layers) States() map[*Layer]bool {
	res := make(map[*Layer]bool, len(l.layers))
	for _, layer := range l.layers {
		res[layer] = layer.State == On
	}
	return res
}

// buildOrder converts the display order into nested arrays.  If no
// display order has been set, nil is returned.
func (l *Layers) buildOrder() (pdf.Array, error) {
	if len(l.order) == 0 {
		return nil, nil
	}

	// stack[0] is the top-level array, stack[k] the k-th open group
	stack := []pdf.Array{{}}
	for i, tok := range l.order {
		top := len(stack) - 1
		switch tok.kind {
		case tokenLayer:
			if tok.layer == nil || tok.layer.owner != l {
				return nil, &OrderError{Pos: i, Err: errUnknownLayer}
			}
			stack[top] = append(stack[top], tok.layer.ref)
		case tokenGroupStart:
			group := pdf.Array{}
			if tok.label != "" {
				group = append(group, pdf.TextString(tok.label))
			}
			stack = append(stack, group)
		case tokenGroupEnd:
			if top == 0 {
				return nil, &OrderError{Pos: i, Err: errUnmatchedEnd}
			}
			group := stack[top]
			stack = stack[:top]
			stack[top-1] = append(stack[top-1], group)
		}
	}
	if open := len(stack) - 1; open > 0 {
		return nil, &OrderError{
			Pos: len(l.order),
			Err: fmt.Errorf("%d group(s) not closed", open),
		}
	}
	return stack[0], nil
}

// radioButtonGroups returns the /RBGroups array and switches off all but
// the first visible layer in each group.  Groups with a single member are
// ignored.
func (l *Layers) radioButtonGroups() pdf.Array {
	var members []*Layer
	for _, layer := range l.layers {
		if strings.TrimSpace(layer.RadioButton) != "" {
			members = append(members, layer)
		}
	}
	slices.SortStableFunc(members, func(a, b *Layer) int {
		return strings.Compare(a.RadioButton, b.RadioButton)
	})

	var res pdf.Array
	for start := 0; start < len(members); {
		end := start + 1
		for end < len(members) && members[end].RadioButton == members[start].RadioButton {
			end++
		}
		group := members[start:end]
		start = end

		if len(group) < 2 {
			continue
		}
		res = append(res, pdf.RefArray(group))

		seenOn := false
		for _, layer := range group {
			if layer.State != On {
				continue
			}
			if seenOn {
				layer.State = Off
			}
			seenOn = true
		}
	}
	return res
}

func (l *Layers) filter(keep func(*Layer) bool) pdf.Array {
	var res pdf.Array
	for _, layer := range l.layers {
		if keep(layer) {
			res = append(res, layer.ref)
		}
	}
	return res
}

// OrderError is returned by [Layers.CreateDictionary] if the display
// order is malformed.
type OrderError struct {
	// Pos is the index of the offending display order entry.  For groups
	// which are not closed, this is the number of entries.
	Pos int

	Err error
}

func (err *OrderError) Error() string {
	return fmt.Sprintf("layer display order, entry %d: %v", err.Pos, err.Err)
}

func (err *OrderError) Unwrap() error {
	return err.Err
}

var (
	errUnknownLayer = errors.New("layer is not registered")
	errUnmatchedEnd = errors.New("group end without matching group start")
)
