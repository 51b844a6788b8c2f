package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// maxSlots is how many (time, store) pairs the edit form offers.
const maxSlots = 5

// slotInput is one time/store pair as entered by the user.
type slotInput struct {
	Time  string
	Store string
}

func (s slotInput) empty() bool {
	return strings.TrimSpace(s.Time) == "" && strings.TrimSpace(s.Store) == ""
}

// parseSlotFlag reads "time@store" or a bare "time".
func parseSlotFlag(s string) (slotInput, error) {
	t, store, _ := strings.Cut(strings.TrimSpace(s), "@")
	if strings.Contains(store, "@") {
		return slotInput{}, fmt.Errorf("invalid slot %q: more than one @", s)
	}
	if strings.TrimSpace(t) == "" {
		return slotInput{}, fmt.Errorf("invalid slot %q: time is required", s)
	}
	return slotInput{Time: strings.TrimSpace(t), Store: strings.TrimSpace(store)}, nil
}

// composeShiftCode builds the stored code for a kind and its slots. Special
// keywords and "-" ignore slots. Empty slots are skipped.
func composeShiftCode(dir *registry.Registry, kind shiftcode.Kind, slots []slotInput) (shiftcode.Raw, error) {
	if kind == shiftcode.KindDash || dir.Parser().IsSpecial(kind) {
		return shiftcode.RawOf(string(kind)), nil
	}
	if !kind.IsAvailability() {
		return shiftcode.Raw{}, fmt.Errorf("unknown kind %q", kind)
	}

	var filled []slotInput
	for _, s := range slots {
		if !s.empty() {
			filled = append(filled, s)
		}
	}
	if len(filled) > maxSlots {
		return shiftcode.Raw{}, fmt.Errorf("at most %d slots allowed, got %d", maxSlots, len(filled))
	}

	parsed := shiftcode.ParsedShift{Kind: kind}
	for i, s := range filled {
		t := strings.TrimSpace(s.Time)
		store := strings.TrimSpace(s.Store)
		if t == "" {
			return shiftcode.Raw{}, fmt.Errorf("slot %d: time is required when a store is chosen", i+1)
		}
		if strings.ContainsAny(t, ",@") {
			return shiftcode.Raw{}, fmt.Errorf("slot %d: time %q may not contain , or @", i+1, t)
		}
		if store != "" {
			if _, ok := dir.Store(store); !ok {
				return shiftcode.Raw{}, fmt.Errorf("slot %d: unknown store %q", i+1, store)
			}
		}
		parsed.Entries = append(parsed.Entries, shiftcode.Entry{Time: t, Store: store})
	}
	return shiftcode.RawOf(shiftcode.Encode(parsed)), nil
}

// kindChoices lists the kinds the edit form offers: availability first,
// then the registry's special keywords, then "-".
func kindChoices(dir *registry.Registry) []shiftcode.Kind {
	kinds := append([]shiftcode.Kind(nil), shiftcode.AvailabilityKinds...)
	for _, k := range dir.Keywords() {
		kinds = append(kinds, k.Name)
	}
	return append(kinds, shiftcode.KindDash)
}
