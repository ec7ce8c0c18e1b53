// Package paginate lays out a title and free text into fixed-size pages
// with greedy word wrap.
//
// Coordinates use a bottom-left origin: y grows upward, and the cursor moves
// down the page by subtracting LineHeight.
package paginate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Margins are page margins in layout units.
type Margins struct {
	Left   float64 `koanf:"left"`
	Right  float64 `koanf:"right"`
	Top    float64 `koanf:"top"`
	Bottom float64 `koanf:"bottom"`
}

// Layout describes the page geometry.
type Layout struct {
	PageWidth  float64 `koanf:"page_width"`
	PageHeight float64 `koanf:"page_height"`
	Margins    Margins `koanf:"margins"`
	LineHeight float64 `koanf:"line_height"`

	// TitleOffset is the gap between the title baseline and the first body
	// line on page 1.
	TitleOffset float64 `koanf:"title_offset"`
}

// DefaultLayout is A4 in points.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:   595.28,
		PageHeight:  841.89,
		Margins:     Margins{Left: 50, Right: 40, Top: 50, Bottom: 50},
		LineHeight:  16,
		TitleOffset: 30,
	}
}

// ContentWidth is the widest a body line may measure.
func (l Layout) ContentWidth() float64 {
	return l.PageWidth - l.Margins.Left - l.Margins.Right
}

// Measurer reports the rendered width of text in layout units.
type Measurer interface {
	Width(text string) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(text string) float64

func (f MeasureFunc) Width(text string) float64 { return f(text) }

// Draw places one line of text.
type Draw struct {
	Text  string
	X, Y  float64
	Title bool
}

// Page is an ordered list of draws.
type Page struct {
	Number int
	Draws  []Draw
}

// Paginate lays out title and body. The title, when non-empty, is drawn on
// page 1 only. A word wider than the content width is drawn whole on its own
// line. Empty body lines advance the cursor without drawing.
func Paginate(title, body string, layout Layout, m Measurer) []Page {
	p := &paginator{layout: layout, m: m, top: layout.PageHeight - layout.Margins.Top}
	p.pages = []Page{{Number: 1}}

	if title != "" {
		p.draw(Draw{Text: title, X: layout.Margins.Left, Y: p.top, Title: true})
	}
	p.y = p.top - layout.TitleOffset

	for _, line := range splitLines(body) {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			p.advance()
			continue
		}
		p.wrap(line)
	}

	// Breaks after the last drawn line leave empty pages behind.
	for n := len(p.pages); n > 1 && len(p.pages[n-1].Draws) == 0; n-- {
		p.pages = p.pages[:n-1]
	}
	return p.pages
}

type paginator struct {
	layout Layout
	m      Measurer
	top    float64
	y      float64
	pages  []Page
}

func (p *paginator) wrap(line string) {
	limit := p.layout.ContentWidth()
	running := ""
	for _, word := range strings.Fields(line) {
		candidate := word
		if running != "" {
			candidate = running + " " + word
		}
		if p.m.Width(candidate) <= limit {
			running = candidate
			continue
		}
		if running != "" {
			p.emit(running)
		}
		running = word
	}
	if running != "" {
		p.emit(running)
	}
}

func (p *paginator) emit(text string) {
	p.draw(Draw{Text: text, X: p.layout.Margins.Left, Y: p.y})
	p.advance()
}

func (p *paginator) draw(d Draw) {
	last := &p.pages[len(p.pages)-1]
	last.Draws = append(last.Draws, d)
}

// advance moves the cursor down one line, starting a new page when it
// crosses the bottom margin.
func (p *paginator) advance() {
	p.y -= p.layout.LineHeight
	if p.y < p.layout.Margins.Bottom {
		p.pages = append(p.pages, Page{Number: len(p.pages) + 1})
		p.y = p.top
	}
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce an extra empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// FixedWidth measures every rune as perRune units wide.
func FixedWidth(perRune float64) Measurer {
	return MeasureFunc(func(text string) float64 {
		return float64(utf8.RuneCountInString(text)) * perRune
	})
}
