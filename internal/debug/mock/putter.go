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

// Package mock provides an in-memory [pdf.Putter] for use in tests.
package mock

import (
	"bytes"
	"errors"
	"io"

	"github.com/ulebule/pdf"
)

// Stream is a stream recorded by a [Putter].
type Stream struct {
	Dict    pdf.Dict
	Filters []pdf.Filter
	Data    []byte
}

// Putter is a [pdf.Putter] which keeps all objects in memory.
// Stream data is recorded unfiltered.
type Putter struct {
	Meta    pdf.MetaInfo
	Objects map[pdf.Reference]pdf.Object
	Streams map[pdf.Reference]*Stream

	nextRef uint32
}

var _ pdf.Putter = (*Putter)(nil)

// NewPutter returns an empty Putter for the given PDF version.
func NewPutter(v pdf.Version) *Putter {
	return &Putter{
		Meta:    pdf.MetaInfo{Version: v, Trailer: pdf.Dict{}},
		Objects: make(map[pdf.Reference]pdf.Object),
		Streams: make(map[pdf.Reference]*Stream),
		nextRef: 1,
	}
}

// GetMeta implements the [pdf.Putter] interface.
func (p *Putter) GetMeta() *pdf.MetaInfo {
	return &p.Meta
}

// Alloc implements the [pdf.Putter] interface.
func (p *Putter) Alloc() pdf.Reference {
	ref := pdf.NewReference(p.nextRef, 0)
	p.nextRef++
	return ref
}

// Put implements the [pdf.Putter] interface.
func (p *Putter) Put(ref pdf.Reference, obj pdf.Object) error {
	if err := p.check(ref); err != nil {
		return err
	}
	p.Objects[ref] = obj
	return nil
}

// OpenStream implements the [pdf.Putter] interface.
func (p *Putter) OpenStream(ref pdf.Reference, dict pdf.Dict, filters ...pdf.Filter) (io.WriteCloser, error) {
	if err := p.check(ref); err != nil {
		return nil, err
	}
	stm := &Stream{Dict: dict, Filters: filters}
	p.Streams[ref] = stm
	return &streamWriter{stm: stm}, nil
}

// Get returns the object ref, or nil if no such object has been written.
func (p *Putter) Get(ref pdf.Reference) pdf.Object {
	return p.Objects[ref]
}

func (p *Putter) check(ref pdf.Reference) error {
	if ref.Number() == 0 || ref.Number() >= p.nextRef {
		return errors.New("reference was not allocated")
	}
	_, isObj := p.Objects[ref]
	_, isStm := p.Streams[ref]
	if isObj || isStm {
		return errors.New("object already written")
	}
	return nil
}

type streamWriter struct {
	stm *Stream
	buf bytes.Buffer
}

func (w *streamWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *streamWriter) Close() error {
	w.stm.Data = w.buf.Bytes()
	return nil
}
