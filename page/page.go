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

// Package page implements PDF page objects.
//
// A [Page] owns an ordered list of content streams.  When the page is
// closed, the references of the content streams form the /Contents entry
// of the page dictionary, and the resources used by the streams are
// merged into a single /Resources dictionary.
package page

import (
	"errors"
	"fmt"

	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/content"
	"github.com/ulebule/pdf/internal/objset"
	"github.com/ulebule/pdf/resource"
	"seehuhn.de/go/geom/rect"
)

// PDF 2.0 sections: 7.7.3.3

// ErrContentShared is returned by [Page.AddContent] if the content stream
// already is page content.
var ErrContentShared = errors.New("content stream already belongs to a page")

// Page is a page of a PDF document.
type Page struct {
	ref pdf.Reference

	// MediaBox is the visible area of the page, in default user space
	// units.
	MediaBox rect.Rect

	contents []*content.Stream
}

var _ pdf.IndirectObject = (*Page)(nil)

// New allocates a new page without any content.
func New(a pdf.Allocator, mediaBox rect.Rect) *Page {
	return &Page{
		ref:      a.Alloc(),
		MediaBox: mediaBox,
	}
}

// Ref implements the [pdf.IndirectObject] interface.
func (p *Page) Ref() pdf.Reference {
	return p.ref
}

// AddContent appends a content stream to the page.
// Each content stream can belong to at most one page.
func (p *Page) AddContent(s *content.Stream) error {
	if !s.MarkPageContent() {
		return fmt.Errorf("stream %s: %w", s.Ref(), ErrContentShared)
	}
	p.contents = append(p.contents, s)
	return nil
}

// NewContent allocates a new content stream and appends it to the page.
func (p *Page) NewContent(a pdf.Allocator) *content.Stream {
	s := content.NewStream(a)
	s.MarkPageContent()
	p.contents = append(p.contents, s)
	return s
}

// CurrentContent returns the content stream which was added last,
// or nil if the page has no content.
func (p *Page) CurrentContent() *content.Stream {
	if len(p.contents) == 0 {
		return nil
	}
	return p.contents[len(p.contents)-1]
}

// Contents returns the content streams of the page, in the order in which
// they were added.
func (p *Page) Contents() []*content.Stream {
	res := make([]*content.Stream, len(p.contents))
	copy(res, p.contents)
	return res
}

// Resources returns all resources used by the content streams of the
// page.  Every resource is listed once, no matter how many streams use it.
func (p *Page) Resources() []resource.Object {
	switch len(p.contents) {
	case 0:
		return nil
	case 1:
		return p.contents[0].Resources()
	}

	var all objset.Set[resource.Object]
	for _, s := range p.contents {
		for _, obj := range s.Resources() {
			all.Insert(obj)
		}
	}
	return all.Slice()
}

// Close computes the /Contents and /Resources entries of the page
// dictionary.  If the page has no content, both values are nil.
func (p *Page) Close() (pdf.Array, pdf.Dict, error) {
	if len(p.contents) == 0 {
		return nil, nil, nil
	}

	contents := pdf.RefArray(p.contents)
	res, err := resource.Build(p.Resources())
	if err != nil {
		return nil, nil, fmt.Errorf("page %s: %w", p.ref, err)
	}
	return contents, res, nil
}

// Encode writes the content streams and the page dictionary to w.
// The resources used by the page are not written; this is the
// responsibility of the caller, since resources are shared between pages.
func (p *Page) Encode(w pdf.Putter, parent pdf.Reference) error {
	if p.MediaBox.URx <= p.MediaBox.LLx || p.MediaBox.URy <= p.MediaBox.LLy {
		return fmt.Errorf("page %s: invalid media box", p.ref)
	}

	contents, res, err := p.Close()
	if err != nil {
		return err
	}
	for _, s := range p.contents {
		err := s.Embed(w)
		if err != nil {
			return fmt.Errorf("page %s: %w", p.ref, err)
		}
	}

	if res == nil {
		// Resources is required, even if empty.
		res = pdf.Dict{}
	}
	dict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    parent,
		"MediaBox":  pdf.Rectangle(p.MediaBox),
		"Resources": res,
	}
	if contents != nil {
		dict["Contents"] = contents
	}
	return w.Put(p.ref, dict)
}
