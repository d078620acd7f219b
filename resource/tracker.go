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
	"fmt"

	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/internal/objset"
)

// Tracker makes sure that each resource is written to a PDF file exactly
// once, no matter how many content streams and pages refer to it.
type Tracker struct {
	w    pdf.Putter
	done objset.Set[Object]
}

// NewTracker returns a Tracker which writes resources to w.
func NewTracker(w pdf.Putter) *Tracker {
	return &Tracker{w: w}
}

// Embed writes all objects which have not been written before.
// Resources used by [Container] objects are written, too.
func (t *Tracker) Embed(objs ...Object) error {
	for _, obj := range objs {
		if !t.done.Insert(obj) {
			continue
		}
		if c, ok := obj.(Container); ok {
			err := t.Embed(c.Resources()...)
			if err != nil {
				return err
			}
		}
		err := obj.Embed(t.w)
		if err != nil {
			return fmt.Errorf("%s resource %s: %w", obj.Category(), obj.Ref(), err)
		}
	}
	return nil
}

// MarkDone records that obj has been written by other means.
// Later calls to [Tracker.Embed] skip this object.
func (t *Tracker) MarkDone(obj Object) {
	t.done.Insert(obj)
}

// Count returns the number of distinct resources written or marked done.
func (t *Tracker) Count() int {
	return t.done.Len()
}
