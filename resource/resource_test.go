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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulebule/pdf"
	"github.com/ulebule/pdf/internal/debug/mock"
)

// testResource records the order in which resources are embedded.
type testResource struct {
	ref  pdf.Reference
	cat  Category
	deps []Object
	log  *[]pdf.Reference
}

func (r *testResource) Ref() pdf.Reference  { return r.ref }
func (r *testResource) Category() Category  { return r.cat }
func (r *testResource) Resources() []Object { return r.deps }
func (r *testResource) Embed(w pdf.Putter) error {
	*r.log = append(*r.log, r.ref)
	return w.Put(r.ref, pdf.Integer(r.ref.Number()))
}

func TestName(t *testing.T) {
	cases := []struct {
		cat  Category
		ref  pdf.Reference
		want pdf.Name
	}{
		{CatFont, pdf.NewReference(12, 0), "F12"},
		{CatXObject, pdf.NewReference(7, 0), "X7"},
		{CatExtGState, pdf.NewReference(3, 0), "GS3"},
		{CatProperties, pdf.NewReference(5, 0), "OC5"},
		{CatColorSpace, pdf.NewReference(9, 0), "CS9"},
		{CatPattern, pdf.NewReference(4, 0), "P4"},
		{CatShading, pdf.NewReference(4, 0), "Sh4"},
		{CatFont, pdf.NewReference(12, 2), "F12_2"},
	}
	for _, c := range cases {
		got := Name(&testResource{ref: c.ref, cat: c.cat})
		if got != c.want {
			t.Errorf("%s %s: got %q, want %q", c.cat, c.ref, got, c.want)
		}
	}
}

func TestBuild(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	f1, _ := NewStandardFont(w, Helvetica)
	f2, _ := NewStandardFont(w, Symbol)
	gs := NewExtGState(w)
	oc := &testResource{ref: w.Alloc(), cat: CatProperties}

	want := pdf.Dict{
		"Font": pdf.Dict{
			Name(f1): f1.Ref(),
			Name(f2): f2.Ref(),
		},
		"ExtGState":  pdf.Dict{Name(gs): gs.Ref()},
		"Properties": pdf.Dict{Name(oc): oc.Ref()},
	}

	orders := [][]Object{
		{f1, f2, gs, oc},
		{oc, gs, f2, f1},
		{f1, gs, f1, oc, f2, gs},
	}
	for i, objs := range orders {
		got, err := Build(objs)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%d: unexpected resources (-want +got):\n%s", i, d)
		}
	}

	wantNames := []pdf.Name{"GS3", "F1", "F2", "OC4"}
	if d := cmp.Diff(wantNames, Names(want)); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}
}

func TestBuildEmpty(t *testing.T) {
	got, err := Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("unexpected resources %v", got)
	}
}

func TestBuildUnknownCategory(t *testing.T) {
	_, err := Build([]Object{&testResource{ref: pdf.NewReference(1, 0), cat: 99}})
	if err == nil {
		t.Error("unknown category accepted")
	}
}

func TestTracker(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	var log []pdf.Reference
	newRes := func(deps ...Object) *testResource {
		return &testResource{ref: w.Alloc(), cat: CatXObject, deps: deps, log: &log}
	}
	a := newRes()
	b := newRes(a)
	c := newRes(b, a)

	tr := NewTracker(w)
	if err := tr.Embed(c, a); err != nil {
		t.Fatal(err)
	}
	if err := tr.Embed(b, c); err != nil {
		t.Fatal(err)
	}

	want := []pdf.Reference{a.Ref(), b.Ref(), c.Ref()}
	if d := cmp.Diff(want, log); d != "" {
		t.Errorf("unexpected embedding order (-want +got):\n%s", d)
	}
	if tr.Count() != 3 {
		t.Errorf("wrong count %d", tr.Count())
	}

	d := newRes()
	tr.MarkDone(d)
	if err := tr.Embed(d); err != nil {
		t.Fatal(err)
	}
	if len(log) != 3 {
		t.Error("resource marked as done was embedded")
	}
}

func TestExtGState(t *testing.T) {
	alpha := 0.5
	width := 2.0
	negative := -1.0

	cases := []struct {
		name    string
		version pdf.Version
		setup   func(gs *ExtGState)
		want    pdf.Dict
		wantVer bool
		wantErr bool
	}{
		{
			name:    "empty",
			version: pdf.V1_7,
			setup:   func(gs *ExtGState) {},
			want:    pdf.Dict{"Type": pdf.Name("ExtGState")},
		},
		{
			name:    "line width",
			version: pdf.V1_3,
			setup:   func(gs *ExtGState) { gs.LineWidth = &width },
			want:    pdf.Dict{"Type": pdf.Name("ExtGState"), "LW": pdf.Real(2)},
		},
		{
			name:    "alpha",
			version: pdf.V1_4,
			setup:   func(gs *ExtGState) { gs.FillAlpha = &alpha; gs.StrokeAlpha = &alpha },
			want: pdf.Dict{
				"Type": pdf.Name("ExtGState"),
				"CA":   pdf.Real(0.5),
				"ca":   pdf.Real(0.5),
			},
		},
		{
			name:    "alpha needs PDF 1.4",
			version: pdf.V1_3,
			setup:   func(gs *ExtGState) { gs.FillAlpha = &alpha },
			wantVer: true,
		},
		{
			name:    "ExtGState needs PDF 1.2",
			version: pdf.V1_1,
			setup:   func(gs *ExtGState) {},
			wantVer: true,
		},
		{
			name:    "negative line width",
			version: pdf.V1_7,
			setup:   func(gs *ExtGState) { gs.LineWidth = &negative },
			wantErr: true,
		},
		{
			name:    "alpha out of range",
			version: pdf.V1_7,
			setup:   func(gs *ExtGState) { gs.StrokeAlpha = &width },
			wantErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := mock.NewPutter(c.version)
			gs := NewExtGState(w)
			c.setup(gs)
			err := gs.Embed(w)

			var verErr *pdf.VersionError
			switch {
			case c.wantVer:
				if !errors.As(err, &verErr) {
					t.Errorf("expected a version error, got %v", err)
				}
				return
			case c.wantErr:
				if err == nil {
					t.Error("invalid graphics state accepted")
				}
				return
			case err != nil:
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, w.Get(gs.Ref())); d != "" {
				t.Errorf("unexpected dictionary (-want +got):\n%s", d)
			}
		})
	}
}

func TestStandardFont(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)

	if _, err := NewStandardFont(w, "Arial"); err == nil {
		t.Error("Arial accepted as a standard font")
	}

	cases := []struct {
		base pdf.Name
		want pdf.Dict
	}{
		{TimesBold, pdf.Dict{
			"Type":     pdf.Name("Font"),
			"Subtype":  pdf.Name("Type1"),
			"BaseFont": TimesBold,
			"Encoding": pdf.Name("WinAnsiEncoding"),
		}},
		{ZapfDingbats, pdf.Dict{
			"Type":     pdf.Name("Font"),
			"Subtype":  pdf.Name("Type1"),
			"BaseFont": ZapfDingbats,
		}},
	}
	for _, c := range cases {
		f, err := NewStandardFont(w, c.base)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Embed(w); err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, w.Get(f.Ref())); d != "" {
			t.Errorf("%s: unexpected dictionary (-want +got):\n%s", c.base, d)
		}
	}
}

func TestStandardFontEncode(t *testing.T) {
	w := mock.NewPutter(pdf.V1_7)
	helvetica, _ := NewStandardFont(w, Helvetica)
	symbol, _ := NewStandardFont(w, Symbol)

	cases := []struct {
		font    *StandardFont
		text    string
		want    pdf.String
		wantErr bool
	}{
		{helvetica, "abc", pdf.String("abc"), false},
		{helvetica, "Grüße", pdf.String("Gr\xfc\xdfe"), false},
		{helvetica, "„€“", pdf.String("\x84\x80\x93"), false},
		{helvetica, "中", nil, true},
		{symbol, "abg", pdf.String("abg"), false},
		{symbol, "\u00b7", pdf.String("\xb7"), false},
		{symbol, "α", nil, true},
	}
	for _, c := range cases {
		got, err := c.font.Encode(c.text)
		if c.wantErr {
			if err == nil {
				t.Errorf("%s %q: expected an error", c.font.BaseFont, c.text)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %q: %v", c.font.BaseFont, c.text, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s %q: unexpected codes (-want +got):\n%s", c.font.BaseFont, c.text, d)
		}
	}
}
