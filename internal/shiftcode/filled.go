package shiftcode

// IsFilled reports whether raw names at least one concrete (time, store)
// pairing, and returns the set of stores so named.
func IsFilled(raw Raw) (bool, map[string]struct{}) {
	return Parse(raw).Filled()
}

// Filled is IsFilled for an already parsed shift.
func (p ParsedShift) Filled() (bool, map[string]struct{}) {
	stores := make(map[string]struct{})
	for _, e := range p.Entries {
		if e.Time != "" && e.Store != "" {
			stores[e.Store] = struct{}{}
		}
	}
	return len(stores) > 0, stores
}

// Covers reports whether the shift assigns its holder to store.
func (p ParsedShift) Covers(store string) bool {
	_, stores := p.Filled()
	_, ok := stores[store]
	return ok
}
