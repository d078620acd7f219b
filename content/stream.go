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

// Package content implements PDF content streams.
//
// A [Stream] collects the operators of a content stream together with the
// resources the operators refer to.  Resources are recorded in the order
// they are first used, each resource at most once.  Streams are either
// page content (see the page package) or the body of a [Form] XObject.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/internal/objset"
	"github.com/ulebule/pdf/oc"
	"github.com/ulebule/pdf/resource"
)

// PDF 2.0 sections: 7.8.2 8.2

// Stream is a content stream under construction.
//
// Errors in the use of the operator methods are recorded in Err; once Err
// is set, all further operators are ignored.  [Stream.Embed] reports Err.
type Stream struct {
	ref         pdf.Reference
	pageContent bool

	buf       bytes.Buffer
	resources []resource.Object
	used      objset.Set[resource.Object]
	nesting   []pairType

	// Err is the first error which occurred while writing operators.
	Err error
}

type pairType byte

const (
	pairQ pairType = iota + 1
	pairBDC
)

// NewStream allocates a new, empty content stream.
func NewStream(a pdf.Allocator) *Stream {
	return &Stream{ref: a.Alloc()}
}

// Ref implements the [pdf.IndirectObject] interface.
func (s *Stream) Ref() pdf.Reference {
	return s.ref
}

// IsPageContent reports whether the stream has been added to a page.
func (s *Stream) IsPageContent() bool {
	return s.pageContent
}

// MarkPageContent records that the stream is page content.  The result is
// false if the stream already was page content, which means that it
// belongs to a different page.
func (s *Stream) MarkPageContent() bool {
	if s.pageContent {
		return false
	}
	s.pageContent = true
	return true
}

// Resources returns the resources used by the stream, in the order they
// were first used.
func (s *Stream) Resources() []resource.Object {
	res := make([]resource.Object, len(s.resources))
	copy(res, s.resources)
	return res
}

// Use records that the stream refers to obj, and returns the name by which
// operators refer to the resource.
func (s *Stream) Use(obj resource.Object) pdf.Name {
	if s.used.Insert(obj) {
		s.resources = append(s.resources, obj)
	}
	return resource.Name(obj)
}

// Printf appends raw content stream operators.  A newline is added
// at the end.
func (s *Stream) Printf(format string, args ...any) {
	if s.Err != nil {
		return
	}
	fmt.Fprintf(&s.buf, format, args...)
	s.buf.WriteByte('\n')
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (s *Stream) PushGraphicsState() {
	if s.Err != nil {
		return
	}
	s.nesting = append(s.nesting, pairQ)
	s.Printf("q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (s *Stream) PopGraphicsState() {
	if s.Err != nil {
		return
	}
	if !s.pop(pairQ) {
		s.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	s.Printf("Q")
}

// LayerStart starts a section of optional content.  The content up to
// the matching [Stream.LayerEnd] is only visible if c is visible.
//
// This implements the PDF operator "BDC" with tag /OC.
func (s *Stream) LayerStart(c oc.Conditional) {
	if s.Err != nil {
		return
	}
	name := s.Use(c)
	s.nesting = append(s.nesting, pairBDC)
	s.Printf("/OC %s BDC", format(name))
}

// LayerEnd ends a section of optional content.
//
// This implements the PDF operator "EMC".
func (s *Stream) LayerEnd() {
	if s.Err != nil {
		return
	}
	if !s.pop(pairBDC) {
		s.Err = errors.New("LayerEnd: no matching LayerStart")
		return
	}
	s.Printf("EMC")
}

// SetExtGState applies the parameters of a graphics state parameter
// dictionary.
//
// This implements the PDF graphics operator "gs".
func (s *Stream) SetExtGState(gs *resource.ExtGState) {
	if s.Err != nil {
		return
	}
	s.Printf("%s gs", format(s.Use(gs)))
}

// SetFillRGB sets the fill color, using the DeviceRGB color space.
//
// This implements the PDF graphics operator "rg".
func (s *Stream) SetFillRGB(r, g, b float64) {
	s.Printf("%s %s %s rg", num(r), num(g), num(b))
}

// FillRectangle fills the rectangle with lower left corner (x, y).
//
// This implements the PDF graphics operators "re" and "f".
func (s *Stream) FillRectangle(x, y, width, height float64) {
	s.Printf("%s %s %s %s re f", num(x), num(y), num(width), num(height))
}

// ShowText shows a single line of text, starting at (x, y).  The text is
// encoded using [resource.StandardFont.Encode]; if this fails, the error
// is recorded in s.Err.
//
// This implements a text object with the PDF operators "Tf", "Td" and
// "Tj".
func (s *Stream) ShowText(font *resource.StandardFont, size, x, y float64, text string) {
	if s.Err != nil {
		return
	}
	codes, err := font.Encode(text)
	if err != nil {
		s.Err = err
		return
	}
	name := s.Use(font)
	s.Printf("BT")
	s.Printf("%s %s Tf", format(name), num(size))
	s.Printf("%s %s Td", num(x), num(y))
	s.Printf("%s Tj", format(codes))
	s.Printf("ET")
}

// DrawForm draws a form XObject.
//
// This implements the PDF graphics operator "Do".
func (s *Stream) DrawForm(f *Form) {
	if s.Err != nil {
		return
	}
	if f.Stream == s {
		s.Err = errors.New("DrawForm: form cannot draw itself")
		return
	}
	s.Printf("%s Do", format(s.Use(f)))
}

// Embed writes the content stream to the PDF file.
func (s *Stream) Embed(w pdf.Putter) error {
	return s.embed(w, nil)
}

func (s *Stream) embed(w pdf.Putter, dict pdf.Dict) error {
	if s.Err != nil {
		return s.Err
	}
	if len(s.nesting) > 0 {
		return fmt.Errorf("content stream %s: %d unclosed operator pair(s)", s.ref, len(s.nesting))
	}

	stm, err := w.OpenStream(s.ref, dict, pdf.FilterFlate{})
	if err != nil {
		return err
	}
	_, err = stm.Write(s.buf.Bytes())
	if err != nil {
		stm.Close()
		return err
	}
	return stm.Close()
}

func (s *Stream) pop(tp pairType) bool {
	n := len(s.nesting)
	if n == 0 || s.nesting[n-1] != tp {
		return false
	}
	s.nesting = s.nesting[:n-1]
	return true
}

func format(obj pdf.Object) string {
	return pdf.Format(obj)
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
