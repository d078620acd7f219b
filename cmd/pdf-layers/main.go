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

// Pdf-layers writes a PDF file which demonstrates optional content.
//
// The document contains grouped, locked and radio-button layers, and
// pages built from several content streams which share resources.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/content"
	"github.com/ulebule/pdf/document"
	"github.com/ulebule/pdf/oc"
	"github.com/ulebule/pdf/resource"
	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"
)

func main() {
	outFile := flag.String("o", "", "output file (default: standard output)")
	title := flag.String("title", "Layer Demo", "document title")
	uncompressed := flag.Bool("uncompressed", false, "write uncompressed streams")
	flag.Parse()

	err := run(*outFile, *title, *uncompressed)
	if err != nil {
		log.Fatal(err)
	}
}

func run(outFile, title string, uncompressed bool) error {
	opt := &document.Options{
		HumanReadable: uncompressed,
		Title:         title,
	}

	var doc *document.Document
	var err error
	if outFile == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal, use -o")
		}
		doc, err = document.New(os.Stdout, opt)
	} else {
		doc, err = document.Create(outFile, opt)
	}
	if err != nil {
		return err
	}

	err = writeDemo(doc)
	if err != nil {
		return err
	}
	return doc.Close()
}

type demoLayers struct {
	text, shapes, notes *oc.Layer
	languages           []*oc.Layer
	noLanguage          *oc.Membership
}

func setupLayers(doc *document.Document) (*demoLayers, error) {
	layers, err := doc.NewLayers("Layer Demo")
	if err != nil {
		return nil, err
	}

	l := &demoLayers{
		text:   layers.NewLayer("Text"),
		shapes: layers.NewLayer("Shapes"),
		notes:  layers.NewLayer("Notes"),
	}
	l.notes.State = oc.Off
	l.notes.Locked = true
	l.notes.Intent = []pdf.Name{"View", "Design"}

	for i, name := range []string{"English", "Deutsch", "Français"} {
		layer := layers.NewLayer(name)
		layer.RadioButton = "language"
		if i == 2 {
			layer.State = oc.Off
		}
		l.languages = append(l.languages, layer)
	}
	l.noLanguage = oc.NewMembership(doc.Out, oc.PolicyAllOff, l.languages...)

	layers.DisplayOrderStartGroup("Content")
	layers.DisplayOrder(l.text)
	layers.DisplayOrder(l.shapes)
	layers.DisplayOrderEndGroup()
	layers.DisplayOrderStartGroup("Language")
	for _, layer := range l.languages {
		layers.DisplayOrder(layer)
	}
	layers.DisplayOrderEndGroup()
	layers.DisplayOrder(l.notes)

	return l, nil
}

var greetings = []string{"Hello!", "Hallo!", "Bonjour !"}

func writeDemo(doc *document.Document) error {
	l, err := setupLayers(doc)
	if err != nil {
		return err
	}

	font, err := resource.NewStandardFont(doc.Out, resource.Helvetica)
	if err != nil {
		return err
	}
	bold, err := resource.NewStandardFont(doc.Out, resource.HelveticaBold)
	if err != nil {
		return err
	}
	alpha := 0.4
	transparent := resource.NewExtGState(doc.Out)
	transparent.FillAlpha = &alpha

	stamp := content.NewForm(doc.Out, rect.Rect{URx: 160, URy: 40})
	stamp.LayerStart(l.notes)
	stamp.SetFillRGB(1, 0.9, 0.3)
	stamp.FillRectangle(0, 0, 160, 40)
	stamp.SetFillRGB(0, 0, 0)
	stamp.ShowText(font, 10, 8, 16, "reviewer note")
	stamp.LayerEnd()

	// page 1: background shapes and text in separate content streams
	p := doc.NewPage(document.A4)
	bg := p.NewContent(doc.Out)
	bg.LayerStart(l.shapes)
	bg.PushGraphicsState()
	bg.SetExtGState(transparent)
	bg.SetFillRGB(0.2, 0.4, 0.8)
	bg.FillRectangle(50, 600, 200, 150)
	bg.PopGraphicsState()
	bg.LayerEnd()

	fg := p.NewContent(doc.Out)
	fg.LayerStart(l.text)
	fg.ShowText(bold, 24, 72, 780, "Optional Content")
	fg.ShowText(font, 12, 72, 560, "Use the layers panel to show and hide parts of this page.")
	fg.LayerEnd()
	for i, layer := range l.languages {
		fg.LayerStart(layer)
		fg.ShowText(font, 18, 300, 700-float64(30*i), greetings[i])
		fg.LayerEnd()
	}
	fg.LayerStart(l.noLanguage)
	fg.ShowText(font, 18, 300, 610, "(no language selected)")
	fg.LayerEnd()
	fg.DrawForm(stamp)

	// page 2: the same resources again, in a single stream
	p = doc.NewPage(document.A4r)
	s := p.NewContent(doc.Out)
	s.LayerStart(l.text)
	s.ShowText(bold, 24, 72, 520, "Page 2")
	s.LayerEnd()
	s.DrawForm(stamp)

	for _, obj := range []*content.Stream{bg, fg, s, stamp.Stream} {
		if obj.Err != nil {
			return fmt.Errorf("content stream %s: %w", obj.Ref(), obj.Err)
		}
	}
	return nil
}
