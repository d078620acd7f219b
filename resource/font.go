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
	"golang.org/x/text/encoding/charmap"
)

// PDF 2.0 sections: 9.6.2.2

// The 14 standard fonts, which every PDF viewer provides without embedding.
const (
	Courier              pdf.Name = "Courier"
	CourierBold          pdf.Name = "Courier-Bold"
	CourierBoldOblique   pdf.Name = "Courier-BoldOblique"
	CourierOblique       pdf.Name = "Courier-Oblique"
	Helvetica            pdf.Name = "Helvetica"
	HelveticaBold        pdf.Name = "Helvetica-Bold"
	HelveticaBoldOblique pdf.Name = "Helvetica-BoldOblique"
	HelveticaOblique     pdf.Name = "Helvetica-Oblique"
	TimesRoman           pdf.Name = "Times-Roman"
	TimesBold            pdf.Name = "Times-Bold"
	TimesBoldItalic      pdf.Name = "Times-BoldItalic"
	TimesItalic          pdf.Name = "Times-Italic"
	Symbol               pdf.Name = "Symbol"
	ZapfDingbats         pdf.Name = "ZapfDingbats"
)

var standardFonts = map[pdf.Name]bool{
	Courier: true, CourierBold: true, CourierBoldOblique: true, CourierOblique: true,
	Helvetica: true, HelveticaBold: true, HelveticaBoldOblique: true, HelveticaOblique: true,
	TimesRoman: true, TimesBold: true, TimesBoldItalic: true, TimesItalic: true,
	Symbol: true, ZapfDingbats: true,
}

// StandardFont is a reference to one of the 14 standard Type 1 fonts.
// No font data is embedded.
type StandardFont struct {
	ref      pdf.Reference
	BaseFont pdf.Name
}

var _ Object = (*StandardFont)(nil)

// NewStandardFont allocates a font resource for one of the standard fonts.
func NewStandardFont(a pdf.Allocator, baseFont pdf.Name) (*StandardFont, error) {
	if !standardFonts[baseFont] {
		return nil, fmt.Errorf("%q is not a standard font", baseFont)
	}
	return &StandardFont{ref: a.Alloc(), BaseFont: baseFont}, nil
}

// Encode converts text to the character codes of the font.
// Symbol and ZapfDingbats use their built-in encoding, where each
// character code is given by a rune in the range 0 to 255.
// All other fonts use WinAnsiEncoding.
func (f *StandardFont) Encode(text string) (pdf.String, error) {
	if f.hasBuiltinEncoding() {
		res := make(pdf.String, 0, len(text))
		for _, r := range text {
			if r > 0xFF {
				return nil, fmt.Errorf("%s: no character code for %q", f.BaseFont, r)
			}
			res = append(res, byte(r))
		}
		return res, nil
	}

	buf, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %q cannot be encoded: %w", f.BaseFont, text, err)
	}
	return pdf.String(buf), nil
}

func (f *StandardFont) hasBuiltinEncoding() bool {
	return f.BaseFont == Symbol || f.BaseFont == ZapfDingbats
}

// Ref implements the [pdf.IndirectObject] interface.
func (f *StandardFont) Ref() pdf.Reference {
	return f.ref
}

// Category implements the [Object] interface.
func (f *StandardFont) Category() Category {
	return CatFont
}

// Embed implements the [Object] interface.
func (f *StandardFont) Embed(w pdf.Putter) error {
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": f.BaseFont,
	}
	if !f.hasBuiltinEncoding() {
		dict["Encoding"] = pdf.Name("WinAnsiEncoding")
	}
	return w.Put(f.ref, dict)
}
