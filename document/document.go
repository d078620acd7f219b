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

// Package document assembles complete PDF documents.
//
// A [Document] collects pages and, optionally, a registry of layers
// (optional content groups).  When the document is closed, all pages,
// layers and resources are written, followed by the page tree and the
// document catalog.
package document

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/oc"
	"github.com/ulebule/pdf/page"
	"github.com/ulebule/pdf/resource"
	"seehuhn.de/go/geom/rect"
)

// ErrLayersDefined is returned by [Document.NewLayers] if the document
// already has a layer registry.
var ErrLayersDefined = errors.New("layers already defined")

// Options control how a document is written.
// The zero value selects PDF 1.7 with compressed streams.
type Options struct {
	// Version is the PDF version of the output file.
	Version pdf.Version

	// HumanReadable disables stream compression.
	HumanReadable bool

	// Title and Author, if set, are written as XMP metadata.
	Title  string
	Author string
}

// Document is a PDF document under construction.
type Document struct {
	// Out is the PDF file the document is written to.
	// This can be used to allocate resources like fonts and
	// graphics states.
	Out *pdf.Writer

	opt     Options
	layers  *oc.Layers
	pages   []*page.Page
	tracker *resource.Tracker
	closed  bool

	now func() time.Time
}

// Create creates a new PDF file with the given name.
func Create(fileName string, opt *Options) (*Document, error) {
	opt = withDefaults(opt)
	out, err := pdf.Create(fileName, opt.Version, writerOptions(opt))
	if err != nil {
		return nil, err
	}
	return newDocument(out, opt), nil
}

// New starts a new PDF document which is written to w.
func New(w io.Writer, opt *Options) (*Document, error) {
	opt = withDefaults(opt)
	out, err := pdf.NewWriter(w, opt.Version, writerOptions(opt))
	if err != nil {
		return nil, err
	}
	return newDocument(out, opt), nil
}

func newDocument(out *pdf.Writer, opt *Options) *Document {
	return &Document{
		Out:     out,
		opt:     *opt,
		tracker: resource.NewTracker(out),
		now:     time.Now,
	}
}

func withDefaults(opt *Options) *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.Version == 0 {
		res.Version = pdf.V1_7
	}
	return res
}

func writerOptions(opt *Options) *pdf.WriterOptions {
	return &pdf.WriterOptions{HumanReadable: opt.HumanReadable}
}

// NewLayers creates the layer registry of the document.
// A document can have at most one layer registry; if a registry
// exists already, ErrLayersDefined is returned and the existing
// registry is left unchanged.
func (d *Document) NewLayers(name string) (*oc.Layers, error) {
	if d.layers != nil {
		return nil, ErrLayersDefined
	}
	if err := pdf.CheckVersion(d.Out, "optional content", pdf.V1_5); err != nil {
		return nil, err
	}
	d.layers = oc.NewLayers(d.Out, name)
	return d.layers, nil
}

// Layers returns the layer registry of the document, or nil if
// [Document.NewLayers] has not been called.
func (d *Document) Layers() *oc.Layers {
	return d.layers
}

// NewPage appends a new, empty page to the document.
func (d *Document) NewPage(mediaBox rect.Rect) *page.Page {
	p := page.New(d.Out, mediaBox)
	d.pages = append(d.pages, p)
	return p
}

// Close writes all pages, layers and resources to the PDF file and
// completes the file.  The document cannot be used after Close returns.
// If an error occurs, the output is abandoned and the underlying file, if
// any, is closed.
func (d *Document) Close() error {
	if d.closed {
		return pdf.ErrClosed
	}
	d.closed = true

	err := d.writeBody()
	if err != nil {
		d.Out.Abort()
		return err
	}
	return nil
}

func (d *Document) writeBody() error {
	pagesRef := d.Out.Alloc()
	catalog := pdf.Dict{
		"Pages": pagesRef,
	}

	if d.layers != nil {
		ocProperties, err := d.layers.CreateDictionary()
		if err != nil {
			return err
		}
		if ocProperties != nil {
			for _, layer := range d.layers.All() {
				err := d.tracker.Embed(layer)
				if err != nil {
					return err
				}
			}
			catalog["OCProperties"] = ocProperties
		}
	}

	kids := make(pdf.Array, 0, len(d.pages))
	for i, p := range d.pages {
		err := d.tracker.Embed(p.Resources()...)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		err = p.Encode(d.Out, pagesRef)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		kids = append(kids, p.Ref())
	}
	err := d.Out.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})
	if err != nil {
		return err
	}

	if d.opt.Title != "" || d.opt.Author != "" {
		ref, err := d.writeMetadata()
		if err != nil {
			return err
		}
		catalog["Metadata"] = ref
	}

	return d.Out.Close(catalog)
}
