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

// Package resource implements PDF resource dictionaries.
//
// A resource is an indirect object which is referenced by name from a
// content stream, for example a font, an image or an optional content
// group.  [Build] groups a set of resources by category and assigns the
// names used inside content streams.
package resource

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ulebule/pdf"
	"golang.org/x/exp/maps"
)

// PDF 2.0 sections: 7.8.3 14.6.2

// Category is the kind of a resource.  It determines the sub-dictionary of
// the resource dictionary in which the resource is listed.
type Category int

// These are the resource categories supported by this package.
const (
	CatExtGState Category = iota + 1
	CatColorSpace
	CatPattern
	CatShading
	CatXObject
	CatFont
	CatProperties
)

var categoryInfo = map[Category]struct {
	key    pdf.Name
	prefix string
}{
	CatExtGState:  {"ExtGState", "GS"},
	CatColorSpace: {"ColorSpace", "CS"},
	CatPattern:    {"Pattern", "P"},
	CatShading:    {"Shading", "Sh"},
	CatXObject:    {"XObject", "X"},
	CatFont:       {"Font", "F"},
	CatProperties: {"Properties", "OC"},
}

// Key returns the key of the resource sub-dictionary for this category,
// for example /Font.
func (c Category) Key() pdf.Name {
	return categoryInfo[c].key
}

func (c Category) String() string {
	if info, ok := categoryInfo[c]; ok {
		return string(info.key)
	}
	return "resource.Category(" + strconv.Itoa(int(c)) + ")"
}

// Object is a resource which can be referenced from a content stream.
type Object interface {
	pdf.IndirectObject

	// Category returns the resource category of the object.
	Category() Category

	// Embed writes the object to the PDF file, using the reference
	// returned by Ref.  Embed is called at most once per object.
	Embed(w pdf.Putter) error
}

// Container is implemented by resources which themselves use other
// resources, for example form XObjects.
type Container interface {
	Resources() []Object
}

// Name returns the name used to refer to obj inside content streams.
// The name is derived from the category and the object number, so that
// it is unique within any resource dictionary.
func Name(obj Object) pdf.Name {
	ref := obj.Ref()
	name := categoryInfo[obj.Category()].prefix + strconv.FormatUint(uint64(ref.Number()), 10)
	if gen := ref.Generation(); gen > 0 {
		name += "_" + strconv.FormatUint(uint64(gen), 10)
	}
	return pdf.Name(name)
}

// Build returns a resource dictionary listing the given objects, grouped
// by category.  The result does not depend on the order of objs, and
// listing the same object more than once has no effect.
func Build(objs []Object) (pdf.Dict, error) {
	res := pdf.Dict{}
	for _, obj := range objs {
		cat := obj.Category()
		key := cat.Key()
		if key == "" {
			return nil, fmt.Errorf("resource %s: unknown category %s", obj.Ref(), cat)
		}
		sub, _ := res[key].(pdf.Dict)
		if sub == nil {
			sub = pdf.Dict{}
			res[key] = sub
		}
		sub[Name(obj)] = obj.Ref()
	}
	return res, nil
}

// Names returns the resource names of all objects listed in a resource
// dictionary created by [Build], sorted alphabetically within each
// category and with categories in alphabetical order.
func Names(dict pdf.Dict) []pdf.Name {
	var res []pdf.Name
	keys := maps.Keys(dict)
	slices.Sort(keys)
	for _, key := range keys {
		sub, ok := dict[key].(pdf.Dict)
		if !ok {
			continue
		}
		names := maps.Keys(sub)
		slices.Sort(names)
		res = append(res, names...)
	}
	return res
}
