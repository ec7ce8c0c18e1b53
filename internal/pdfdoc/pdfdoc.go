// Package pdfdoc renders paginated text to PDF.
package pdfdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/tradeassess/internal/paginate"
)

const (
	fontFamily = "Helvetica"
	bodySize   = 11
	titleSize  = 16
)

// Renderer draws paginate pages with the core Helvetica fonts. Sizes are in
// points, the unit paginate layouts are expressed in.
type Renderer struct {
	layout  paginate.Layout
	measure *fpdf.Fpdf
	tr      func(string) string
}

// NewRenderer creates a Renderer for pages laid out with layout.
func NewRenderer(layout paginate.Layout) *Renderer {
	m := newDocument(layout)
	m.SetFont(fontFamily, "", bodySize)
	return &Renderer{layout: layout, measure: m, tr: m.UnicodeTranslatorFromDescriptor("")}
}

func newDocument(layout paginate.Layout) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return pdf
}

// Measurer measures body text in the body font.
func (r *Renderer) Measurer() paginate.Measurer {
	return paginate.MeasureFunc(func(text string) float64 {
		return r.measure.GetStringWidth(r.tr(text))
	})
}

// Render writes pages as a PDF to w.
func (r *Renderer) Render(w io.Writer, pages []paginate.Page) error {
	pdf := r.build(pages)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// Write renders pages to path, creating its directory if needed.
func (r *Renderer) Write(path string, pages []paginate.Page) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	pdf := r.build(pages)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// build draws every page. The layout's y axis points up; fpdf's points down.
func (r *Renderer) build(pages []paginate.Page) *fpdf.Fpdf {
	pdf := newDocument(r.layout)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, d := range page.Draws {
			if d.Title {
				pdf.SetFont(fontFamily, "B", titleSize)
			} else {
				pdf.SetFont(fontFamily, "", bodySize)
			}
			pdf.Text(d.X, r.layout.PageHeight-d.Y, tr(d.Text))
		}
	}
	if len(pages) == 0 {
		pdf.AddPage()
	}
	return pdf
}

// SafeFilename derives the report file name from a candidate's name. Only
// letters (with their combining marks), digits, spaces, '_' and '-' are kept.
func SafeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	if safe == "" {
		safe = "candidate"
	}
	return safe + "_career_report.pdf"
}
