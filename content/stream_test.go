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

package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/internal/debug/mock"
	"github.com/ulebule/pdf/oc"
	"github.com/ulebule/pdf/resource"
	"seehuhn.de/go/geom/rect"
)

func TestResourceOrder(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	font, err := resource.NewStandardFont(w, resource.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	gs := resource.NewExtGState(w)
	layers := oc.NewLayers(w, "")
	layer := layers.NewLayer("notes")

	s := NewStream(w)
	s.LayerStart(layer)
	s.ShowText(font, 12, 72, 720, "hello")
	s.LayerEnd()
	s.SetExtGState(gs)
	s.ShowText(font, 10, 72, 700, "again")
	s.LayerStart(layer)
	s.LayerEnd()

	var got []pdf.Reference
	for _, obj := range s.Resources() {
		got = append(got, obj.Ref())
	}
	want := []pdf.Reference{layer.Ref(), font.Ref(), gs.Ref()}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected resources (-want +got):\n%s", d)
	}
}

func TestOperators(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	font, _ := resource.NewStandardFont(w, resource.TimesRoman)
	layers := oc.NewLayers(w, "")
	layer := layers.NewLayer("L")

	s := NewStream(w)
	s.PushGraphicsState()
	s.LayerStart(layer)
	s.SetFillRGB(1, 0.5, 0)
	s.FillRectangle(10, 20, 30.5, 40)
	s.ShowText(font, 12, 72, 720, "a (b)")
	s.LayerEnd()
	s.PopGraphicsState()

	if err := s.Embed(w); err != nil {
		t.Fatal(err)
	}
	stm := w.Streams[s.Ref()]
	if stm == nil {
		t.Fatal("stream was not written")
	}

	fontName := string(resource.Name(font))
	layerName := string(resource.Name(layer))
	want := strings.Join([]string{
		"q",
		"/OC /" + layerName + " BDC",
		"1 0.5 0 rg",
		"10 20 30.5 40 re f",
		"BT",
		"/" + fontName + " 12 Tf",
		"72 720 Td",
		"(a (b)) Tj",
		"ET",
		"EMC",
		"Q",
		"",
	}, "\n")
	if d := cmp.Diff(want, string(stm.Data)); d != "" {
		t.Errorf("unexpected content (-want +got):\n%s", d)
	}
	if len(stm.Filters) != 1 {
		t.Errorf("expected one filter, got %d", len(stm.Filters))
	}
}

func TestNesting(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	layer := oc.NewLayers(w, "").NewLayer("L")

	tests := []struct {
		name  string
		build func(s *Stream)
	}{
		{"unclosed q", func(s *Stream) { s.PushGraphicsState() }},
		{"unclosed layer", func(s *Stream) { s.LayerStart(layer) }},
		{"extra Q", func(s *Stream) { s.PopGraphicsState() }},
		{"extra EMC", func(s *Stream) { s.LayerEnd() }},
		{"crossed", func(s *Stream) {
			s.PushGraphicsState()
			s.LayerStart(layer)
			s.PopGraphicsState()
			s.LayerEnd()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(w)
			tt.build(s)
			if err := s.Embed(w); err == nil {
				t.Error("malformed stream was embedded")
			}
		})
	}
}

func TestPageContentFlag(t *testing.T) {
	s := NewStream(mock.NewPutter(pdf.V1_7))
	if s.IsPageContent() {
		t.Error("new stream is page content")
	}
	if !s.MarkPageContent() {
		t.Error("first MarkPageContent failed")
	}
	if s.MarkPageContent() {
		t.Error("second MarkPageContent succeeded")
	}
}

func TestForm(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	font, _ := resource.NewStandardFont(w, resource.Courier)
	form := NewForm(w, rect.Rect{URx: 100, URy: 50})
	form.ShowText(font, 10, 0, 0, "stamp")

	page := NewStream(w)
	page.DrawForm(form)
	if got := page.Resources(); len(got) != 1 || got[0] != resource.Object(form) {
		t.Errorf("page resources = %v, want the form only", got)
	}

	form.DrawForm(form)
	if form.Err == nil {
		t.Error("form drawing itself was accepted")
	}
	form.Err = nil

	if err := form.Embed(w); err != nil {
		t.Fatal(err)
	}
	stm := w.Streams[form.Ref()]
	want := pdf.Dict{
		"Type":    pdf.Name("XObject"),
		"Subtype": pdf.Name("Form"),
		"BBox":    pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(100), pdf.Integer(50)},
		"Resources": pdf.Dict{
			"Font": pdf.Dict{resource.Name(font): font.Ref()},
		},
	}
	if d := cmp.Diff(want, stm.Dict); d != "" {
		t.Errorf("unexpected form dictionary (-want +got):\n%s", d)
	}
}

func TestShowTextEncoding(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	font, _ := resource.NewStandardFont(w, resource.Helvetica)

	s := NewStream(w)
	s.ShowText(font, 12, 0, 0, "Grüße €5")
	if err := s.Embed(w); err != nil {
		t.Fatal(err)
	}
	data := string(w.Streams[s.Ref()].Data)
	if want := "(Gr\xfc\xdfe \x805) Tj\n"; !strings.Contains(data, want) {
		t.Errorf("text not WinAnsi encoded: %q", data)
	}

	s = NewStream(w)
	s.ShowText(font, 12, 0, 0, "日本語")
	if s.Err == nil {
		t.Error("text outside WinAnsi was accepted")
	}
	if len(s.Resources()) != 0 {
		t.Error("font was recorded for rejected text")
	}
}
