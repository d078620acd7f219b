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

package oc

import (
	"errors"
	"math"

	"github.com/ulebule/pdf"
	"golang.org/x/text/language"
)

// PDF 2.0 sections: 8.11.4.4

// Usage represents an optional content usage dictionary.  It describes the
// nature of the content controlled by a layer.
type Usage struct {
	// Creator (optional) contains application-specific data.
	Creator *UsageCreator

	// Language (optional) specifies the language of the content.
	Language *UsageLanguage

	// Export (optional) is the recommended state of the layer when the
	// document is converted to a format without optional content.
	Export *UsageExport

	// Zoom (optional) specifies the range of magnifications at which the
	// content is best viewed.
	Zoom *UsageZoom

	// Print (optional) specifies how the content is used when printing.
	Print *UsagePrint

	// View (optional) is the recommended state of the layer when the
	// document is first opened.
	View *UsageView
}

// UsageCreator identifies the application which created a layer.
type UsageCreator struct {
	// Creator is the name of the application.
	Creator string

	// Subtype is the type of content, for example /Artwork or /Technical.
	Subtype pdf.Name
}

// UsageLanguage specifies the language of the content of a layer.
type UsageLanguage struct {
	Lang language.Tag

	// Preferred indicates that this layer should be used if there is only
	// a partial match between the system language and the languages of
	// all layers.
	Preferred bool
}

// UsageExport contains the export state of a layer.
type UsageExport struct {
	ExportState bool
}

// UsageZoom specifies a range of magnifications.  A Max value of 0 means
// that there is no upper limit.
type UsageZoom struct {
	Min float64
	Max float64
}

// UsagePrint specifies how the content of a layer is used when printing.
type UsagePrint struct {
	// Subtype is the kind of content, for example /Trapping,
	// /PrintersMarks or /Watermark.
	Subtype pdf.Name

	// PrintState indicates whether the layer is printed.
	PrintState bool
}

// UsageView contains the view state of a layer.
type UsageView struct {
	ViewState bool
}

func (u *Usage) asDict() (pdf.Dict, error) {
	dict := pdf.Dict{}

	if u.Creator != nil {
		if u.Creator.Creator == "" {
			return nil, errors.New("Usage.Creator.Creator is required")
		}
		if u.Creator.Subtype == "" {
			return nil, errors.New("Usage.Creator.Subtype is required")
		}
		dict["CreatorInfo"] = pdf.Dict{
			"Creator": pdf.TextString(u.Creator.Creator),
			"Subtype": u.Creator.Subtype,
		}
	}

	if u.Language != nil {
		if u.Language.Lang == language.Und {
			return nil, errors.New("Usage.Language.Lang is required")
		}
		langDict := pdf.Dict{
			"Lang": pdf.TextString(u.Language.Lang.String()),
		}
		if u.Language.Preferred {
			langDict["Preferred"] = pdf.Name("ON")
		}
		dict["Language"] = langDict
	}

	if u.Export != nil {
		dict["Export"] = pdf.Dict{"ExportState": onOff(u.Export.ExportState)}
	}

	if u.Zoom != nil {
		zMin, zMax := u.Zoom.Min, u.Zoom.Max
		if zMax == 0 {
			zMax = math.Inf(1)
		}
		if zMin < 0 || zMin > zMax {
			return nil, errors.New("invalid zoom range")
		}
		zoomDict := pdf.Dict{}
		if zMin > 0 {
			zoomDict["min"] = pdf.Real(zMin)
		}
		if !math.IsInf(zMax, 1) {
			zoomDict["max"] = pdf.Real(zMax)
		}
		if len(zoomDict) > 0 {
			dict["Zoom"] = zoomDict
		}
	}

	if u.Print != nil {
		printDict := pdf.Dict{"PrintState": onOff(u.Print.PrintState)}
		if u.Print.Subtype != "" {
			printDict["Subtype"] = u.Print.Subtype
		}
		dict["Print"] = printDict
	}

	if u.View != nil {
		dict["View"] = pdf.Dict{"ViewState": onOff(u.View.ViewState)}
	}

	return dict, nil
}
