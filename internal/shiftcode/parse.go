package shiftcode

import (
	"errors"
	"strings"
	"unicode"
)

const (
	segmentSep = ","
	storeSep   = "@"
)

var errAmbiguousStore = errors.New("segment has more than one store separator")

// Entry is one (time, store) pair of an availability code. Store is empty
// when the segment named no store.
type Entry struct {
	Time  string
	Store string
}

// ParsedShift is the structured form of a shift code.
type ParsedShift struct {
	Kind    Kind
	Entries []Entry
}

// Dash is the parsed form of an empty or unparseable code.
func Dash() ParsedShift {
	return ParsedShift{Kind: KindDash}
}

// Variant reports which shape the shift takes.
func (p ParsedShift) Variant() Variant {
	switch {
	case p.Kind == KindDash:
		return VariantDash
	case p.Kind == KindNone || p.Kind.IsAvailability():
		return VariantAvailability
	default:
		return VariantSpecial
	}
}

// Parser decodes shift codes against a special-keyword vocabulary.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	specials map[Kind]struct{}
}

// NewParser returns a parser recognising exactly the given special keywords.
// Availability kinds and the dash are ignored.
func NewParser(specials ...Kind) *Parser {
	set := make(map[Kind]struct{}, len(specials))
	for _, k := range specials {
		if k == KindNone || k == KindDash || k.IsAvailability() {
			continue
		}
		set[k] = struct{}{}
	}
	return &Parser{specials: set}
}

var defaultParser = NewParser(DefaultSpecialKinds...)

// Parse decodes raw with the built-in vocabulary.
func Parse(raw Raw) ParsedShift {
	return defaultParser.Parse(raw)
}

// ParseString decodes a stored string with the built-in vocabulary.
func ParseString(s string) ParsedShift {
	return defaultParser.Parse(RawOf(s))
}

// IsSpecial reports whether k is in the parser's vocabulary.
func (p *Parser) IsSpecial(k Kind) bool {
	_, ok := p.specials[k]
	return ok
}

// Parse never fails: anything it cannot decode comes back as Dash.
func (p *Parser) Parse(raw Raw) ParsedShift {
	if !raw.Present {
		return Dash()
	}
	s := strings.TrimSpace(raw.Value)
	if s == "" || s == string(KindDash) {
		return Dash()
	}
	if p.IsSpecial(Kind(s)) || looksLikeKeyword(s) {
		return ParsedShift{Kind: Kind(s)}
	}

	parsed, err := parseAvailability(s)
	if err != nil {
		return Dash()
	}
	return parsed
}

// looksLikeKeyword reports whether s is a single word outside the vocabulary,
// such as a keyword added to the data before the code knows it. Times always
// carry a digit.
func looksLikeKeyword(s string) bool {
	if Kind(s).IsAvailability() || strings.ContainsAny(s, segmentSep+storeSep) {
		return false
	}
	return !strings.ContainsFunc(s, unicode.IsDigit)
}

// parseAvailability reads the first token as the kind and the rest as
// segments. A first token that is not an availability kind is dropped.
func parseAvailability(s string) (ParsedShift, error) {
	tokens := strings.Split(s, segmentSep)

	var parsed ParsedShift
	if head := Kind(strings.TrimSpace(tokens[0])); head.IsAvailability() {
		parsed.Kind = head
	}

	for _, tok := range tokens[1:] {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		entry, err := parseSegment(tok)
		if err != nil {
			return ParsedShift{}, err
		}
		parsed.Entries = append(parsed.Entries, entry)
	}

	if parsed.Kind == KindNone && len(parsed.Entries) == 0 {
		return Dash(), nil
	}
	return parsed, nil
}

func parseSegment(tok string) (Entry, error) {
	switch strings.Count(tok, storeSep) {
	case 0:
		return Entry{Time: tok}, nil
	case 1:
		tm, store, _ := strings.Cut(tok, storeSep)
		return Entry{Time: strings.TrimSpace(tm), Store: strings.TrimSpace(store)}, nil
	default:
		return Entry{}, errAmbiguousStore
	}
}

// Encode renders p in the stored wire format. For every code Parse accepts
// without degrading, Encode(Parse(code)) yields an equivalent code.
func Encode(p ParsedShift) string {
	switch p.Variant() {
	case VariantDash:
		return string(KindDash)
	case VariantSpecial:
		return string(p.Kind)
	}

	// The first token is always the kind, empty when there is none.
	parts := make([]string, 0, len(p.Entries)+1)
	parts = append(parts, string(p.Kind))
	for _, e := range p.Entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, segmentSep)
}

// String formats the entry as "time@store" or "time".
func (e Entry) String() string {
	if e.Store == "" {
		return e.Time
	}
	return e.Time + storeSep + e.Store
}
