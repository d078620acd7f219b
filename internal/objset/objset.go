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

// Package objset implements ordered sets of indirect objects.
//
// Elements are kept sorted by object identity, see [pdf.CompareObjects].
// Two elements with the same reference are considered equal, even if they
// are different Go values.
package objset

import (
	"iter"
	"slices"

	"github.com/ulebule/pdf"
)

// Set is an ordered set of indirect objects.
// The zero value is an empty set, ready to use.
type Set[T pdf.IndirectObject] struct {
	elems []T
}

// New returns a set containing the given objects.  Duplicates are dropped.
func New[T pdf.IndirectObject](objs ...T) *Set[T] {
	s := &Set[T]{}
	for _, obj := range objs {
		s.Insert(obj)
	}
	return s
}

// Insert adds obj to the set, unless an object with the same reference is
// already present.  The return value reports whether obj was added.
func (s *Set[T]) Insert(obj T) bool {
	i, found := s.search(obj)
	if found {
		return false
	}
	s.elems = slices.Insert(s.elems, i, obj)
	return true
}

// Contains reports whether an object with the same reference as obj is in
// the set.
func (s *Set[T]) Contains(obj T) bool {
	_, found := s.search(obj)
	return found
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.elems)
}

// All iterates over the elements of the set, in increasing order.
func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.elems)
}

// Slice returns the elements of the set, in increasing order.
// The returned slice is a copy.
func (s *Set[T]) Slice() []T {
	return slices.Clone(s.elems)
}

func (s *Set[T]) search(obj T) (int, bool) {
	return slices.BinarySearchFunc(s.elems, obj, func(a, b T) int {
		return pdf.CompareObjects(a, b)
	})
}
