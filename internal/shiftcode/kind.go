package shiftcode

// Kind is the coarse availability category or status keyword at the head of
// a shift code.
type Kind string

const (
	KindNone    Kind = ""
	KindAM      Kind = "AM可"
	KindPM      Kind = "PM可"
	KindFullDay Kind = "1日可"
	KindDash    Kind = "-"

	KindDayOff   Kind = "休み"
	KindKanoya   Kind = "鹿屋"
	KindKagoKita Kind = "かご北"
	KindRecruit  Kind = "リクルート"
)

// AvailabilityKinds are the kinds that may be followed by time segments,
// in the order the edit form offers them.
var AvailabilityKinds = []Kind{KindAM, KindPM, KindFullDay}

// DefaultSpecialKinds is the built-in special keyword vocabulary.
var DefaultSpecialKinds = []Kind{KindDayOff, KindKanoya, KindKagoKita, KindRecruit}

// IsAvailability reports whether k is one of AM可, PM可 or 1日可.
func (k Kind) IsAvailability() bool {
	switch k {
	case KindAM, KindPM, KindFullDay:
		return true
	}
	return false
}

// Variant distinguishes the three shapes a parsed shift can take.
type Variant int

const (
	VariantDash Variant = iota
	VariantSpecial
	VariantAvailability
)

func (v Variant) String() string {
	switch v {
	case VariantSpecial:
		return "special"
	case VariantAvailability:
		return "availability"
	default:
		return "dash"
	}
}
