package shiftcode

import (
	"strings"
	"time"
)

// Medium selects how presented shifts will be consumed.
type Medium int

const (
	// MediumScreen is the terminal table.
	MediumScreen Medium = iota
	// MediumPrint covers PDF and spreadsheet documents.
	MediumPrint
	// MediumPlain is machine-readable text (CSV); it carries no styling.
	MediumPlain
)

func (m Medium) String() string {
	switch m {
	case MediumPrint:
		return "print"
	case MediumPlain:
		return "plain"
	default:
		return "screen"
	}
}

// separator joins spans when a presented shift is flattened to text.
func (m Medium) separator() string {
	if m == MediumPlain {
		return segmentSep
	}
	return "\n"
}

// Context carries what the presenter needs to know about the cell's date.
type Context struct {
	Medium    Medium
	Weekday   time.Weekday
	IsHoliday bool
}

// HolidayOracle answers whether a date is a public holiday.
type HolidayOracle interface {
	IsHoliday(date time.Time) bool
}

// NewContext builds a Context for date. holidays may be nil.
func NewContext(medium Medium, date time.Time, holidays HolidayOracle) Context {
	ctx := Context{Medium: medium, Weekday: date.Weekday()}
	if holidays != nil {
		ctx.IsHoliday = holidays.IsHoliday(date)
	}
	return ctx
}

// Span is one styled run of text inside a cell.
type Span struct {
	Text       string
	Color      Color
	Background Color
	Bold       bool
}

// Presented is a medium-neutral rendering of one shift cell.
type Presented struct {
	Spans         []Span
	RowBackground Color
	separator     string
}

// Text flattens the spans using the medium's separator: newlines for screen
// and print, commas for plain.
func (p Presented) Text() string {
	parts := make([]string, len(p.Spans))
	for i, s := range p.Spans {
		parts[i] = s.Text
	}
	sep := p.separator
	if sep == "" {
		sep = "\n"
	}
	return strings.Join(parts, sep)
}

// StoreColors looks up the display color registered for a store.
type StoreColors interface {
	StoreColor(store string) (Color, bool)
}

// Presenter turns parsed shifts into styled spans. It holds only immutable
// configuration and is safe for concurrent use.
type Presenter struct {
	parser  *Parser
	stores  StoreColors
	palette Palette
}

// NewPresenter returns a presenter. parser may be nil for the built-in
// vocabulary and stores may be nil when no store colors are known.
func NewPresenter(parser *Parser, stores StoreColors, palette Palette) *Presenter {
	if parser == nil {
		parser = defaultParser
	}
	return &Presenter{parser: parser, stores: stores, palette: palette}
}

// Parser returns the parser used by PresentRaw.
func (pr *Presenter) Parser() *Parser { return pr.parser }

// Palette returns the presenter's colors.
func (pr *Presenter) Palette() Palette { return pr.palette }

// PresentRaw parses raw and presents the result.
func (pr *Presenter) PresentRaw(raw Raw, ctx Context) Presented {
	return pr.Present(pr.parser.Parse(raw), ctx)
}

// Present renders p for ctx.
func (pr *Presenter) Present(p ParsedShift, ctx Context) Presented {
	out := Presented{
		RowBackground: pr.RowBackground(ctx),
		separator:     ctx.Medium.separator(),
	}

	switch p.Variant() {
	case VariantDash:
		out.Spans = []Span{{Text: string(KindDash)}}
	case VariantSpecial:
		out.Spans = []Span{{Text: string(p.Kind), Background: pr.palette.Specials[p.Kind], Bold: true}}
	default:
		if p.Kind != KindNone {
			out.Spans = append(out.Spans, Span{Text: string(p.Kind), Color: pr.palette.KindLabel})
		}
		for _, e := range p.Entries {
			out.Spans = append(out.Spans, Span{Text: e.String(), Color: pr.entryColor(e)})
		}
		if len(out.Spans) == 0 {
			out.Spans = []Span{{Text: string(KindDash)}}
		}
	}

	if ctx.Medium == MediumPlain {
		out.RowBackground = ""
		for i := range out.Spans {
			out.Spans[i] = Span{Text: out.Spans[i].Text}
		}
		// Keep the empty kind token so the text still encodes the same code.
		if p.Variant() == VariantAvailability && p.Kind == KindNone && len(p.Entries) > 0 {
			out.Spans = append([]Span{{}}, out.Spans...)
		}
	}
	return out
}

func (pr *Presenter) entryColor(e Entry) Color {
	if e.Store != "" && pr.stores != nil {
		if c, ok := pr.stores.StoreColor(e.Store); ok {
			return c
		}
	}
	return pr.palette.Neutral
}

// RowBackground returns the row color for ctx: holidays and Sundays take the
// holiday background, Saturdays the Saturday background. Plain media never
// get a background.
func (pr *Presenter) RowBackground(ctx Context) Color {
	if ctx.Medium == MediumPlain {
		return ""
	}
	switch {
	case ctx.IsHoliday || ctx.Weekday == time.Sunday:
		return pr.palette.Holiday
	case ctx.Weekday == time.Saturday:
		return pr.palette.Saturday
	}
	return ""
}

// PlainText renders p as machine-readable text, identical to Encode.
func PlainText(p ParsedShift) string {
	return Encode(p)
}
