// Package registry holds the static directory the rest of the system is keyed
// on: the employee roster, stores grouped by area with their display colors,
// and the special keywords a shift code may consist of.
package registry

import (
	"fmt"

	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// Store is a shop that may request help.
type Store struct {
	Name  string
	Area  string
	Color shiftcode.Color
}

// Area groups stores for lookup and tabbed display.
type Area struct {
	Name   string
	Stores []Store
}

// Keyword is a special shift keyword and its optional cell background.
type Keyword struct {
	Name       shiftcode.Kind
	Background shiftcode.Color
}

// Registry is immutable once built.
type Registry struct {
	employees []string
	areas     []Area
	stores    map[string]Store
	keywords  []Keyword
}

// New validates and indexes the given directory. Every store must belong to
// exactly one area and carry a #RRGGBB color.
func New(employees []string, areas []Area, keywords []Keyword) (*Registry, error) {
	r := &Registry{
		stores: make(map[string]Store),
	}

	seenEmp := make(map[string]bool, len(employees))
	for _, e := range employees {
		if e == "" {
			return nil, fmt.Errorf("registry: empty employee name")
		}
		if seenEmp[e] {
			return nil, fmt.Errorf("registry: duplicate employee %q", e)
		}
		seenEmp[e] = true
		r.employees = append(r.employees, e)
	}

	seenArea := make(map[string]bool, len(areas))
	for _, a := range areas {
		if a.Name == "" {
			return nil, fmt.Errorf("registry: area with empty name")
		}
		if seenArea[a.Name] {
			return nil, fmt.Errorf("registry: duplicate area %q", a.Name)
		}
		seenArea[a.Name] = true

		area := Area{Name: a.Name, Stores: make([]Store, 0, len(a.Stores))}
		for _, s := range a.Stores {
			if s.Name == "" {
				return nil, fmt.Errorf("registry: empty store name in area %q", a.Name)
			}
			if prev, dup := r.stores[s.Name]; dup {
				return nil, fmt.Errorf("registry: store %q listed in both %q and %q", s.Name, prev.Area, a.Name)
			}
			if !s.Color.Valid() {
				return nil, fmt.Errorf("registry: store %q has invalid color %q", s.Name, s.Color)
			}
			s.Area = a.Name
			r.stores[s.Name] = s
			area.Stores = append(area.Stores, s)
		}
		r.areas = append(r.areas, area)
	}

	seenKw := make(map[shiftcode.Kind]bool, len(keywords))
	for _, k := range keywords {
		if k.Name == shiftcode.KindNone || k.Name == shiftcode.KindDash || k.Name.IsAvailability() {
			return nil, fmt.Errorf("registry: %q cannot be a special keyword", k.Name)
		}
		if seenKw[k.Name] {
			return nil, fmt.Errorf("registry: duplicate keyword %q", k.Name)
		}
		if k.Background != "" && !k.Background.Valid() {
			return nil, fmt.Errorf("registry: keyword %q has invalid background %q", k.Name, k.Background)
		}
		seenKw[k.Name] = true
		r.keywords = append(r.keywords, k)
	}

	return r, nil
}

// Employees returns the roster in display order.
func (r *Registry) Employees() []string {
	return append([]string(nil), r.employees...)
}

// HasEmployee reports whether name is on the roster.
func (r *Registry) HasEmployee(name string) bool {
	for _, e := range r.employees {
		if e == name {
			return true
		}
	}
	return false
}

// Areas returns the areas in display order.
func (r *Registry) Areas() []Area {
	return append([]Area(nil), r.areas...)
}

// Area looks up an area by name.
func (r *Registry) Area(name string) (Area, bool) {
	for _, a := range r.areas {
		if a.Name == name {
			return a, true
		}
	}
	return Area{}, false
}

// Stores returns every store, area by area.
func (r *Registry) Stores() []Store {
	var out []Store
	for _, a := range r.areas {
		out = append(out, a.Stores...)
	}
	return out
}

// Store looks up a store by name.
func (r *Registry) Store(name string) (Store, bool) {
	s, ok := r.stores[name]
	return s, ok
}

// StoreColor implements shiftcode.StoreColors.
func (r *Registry) StoreColor(name string) (shiftcode.Color, bool) {
	s, ok := r.stores[name]
	if !ok {
		return "", false
	}
	return s.Color, true
}

// Keywords returns the special keyword vocabulary.
func (r *Registry) Keywords() []Keyword {
	return append([]Keyword(nil), r.keywords...)
}

// Parser returns a shift-code parser recognising the registry's keywords.
func (r *Registry) Parser() *shiftcode.Parser {
	kinds := make([]shiftcode.Kind, len(r.keywords))
	for i, k := range r.keywords {
		kinds[i] = k.Name
	}
	return shiftcode.NewParser(kinds...)
}

// Palette returns base with the keyword backgrounds applied. Keywords without
// a background are left out so they render bold and unfilled.
func (r *Registry) Palette(base shiftcode.Palette) shiftcode.Palette {
	specials := make(map[shiftcode.Kind]shiftcode.Color, len(r.keywords))
	for _, k := range r.keywords {
		if k.Background != "" {
			specials[k.Name] = k.Background
		}
	}
	base.Specials = specials
	return base
}

// Presenter wires a shift presenter to the registry.
func (r *Registry) Presenter(base shiftcode.Palette) *shiftcode.Presenter {
	return shiftcode.NewPresenter(r.Parser(), r, r.Palette(base))
}
