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

package pdf

import (
	"cmp"
	"io"
)

// Putter is the interface used to write indirect objects to a PDF file.
// It is implemented by [*Writer].
type Putter interface {
	// GetMeta returns the meta information of the file being written.
	GetMeta() *MetaInfo

	// Alloc allocates a new object number.  Object numbers are handed out
	// in increasing order, so that later allocations compare greater.
	Alloc() Reference

	// Put writes obj to the file, as the indirect object ref.
	Put(ref Reference, obj Object) error

	// OpenStream starts writing the stream ref.  The stream data must be
	// written to the returned io.WriteCloser, which must be closed after
	// all data has been written.
	OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error)
}

// An Allocator hands out object numbers for indirect objects.
type Allocator interface {
	Alloc() Reference
}

// IndirectObject is implemented by all document entities which are written
// as indirect objects.  The reference is assigned once, when the entity is
// created, and identifies the entity for its whole lifetime.
type IndirectObject interface {
	Ref() Reference
}

// CompareObjects defines a total order on indirect objects, by object
// number first and generation number second.  The result is negative if a
// sorts before b, zero if both refer to the same object, and positive
// otherwise.
func CompareObjects(a, b IndirectObject) int {
	ra, rb := a.Ref(), b.Ref()
	if c := cmp.Compare(ra.Number(), rb.Number()); c != 0 {
		return c
	}
	return cmp.Compare(ra.Generation(), rb.Generation())
}

// RefArray returns an array with the references of the given objects,
// in the given order.
func RefArray[T IndirectObject](objs []T) Array {
	res := make(Array, len(objs))
	for i, obj := range objs {
		res[i] = obj.Ref()
	}
	return res
}
