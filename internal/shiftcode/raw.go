package shiftcode

// Raw is a shift code as read from storage: either a string or absent.
// Storage adapters normalise whatever the column held into a Raw before the
// value reaches the parser.
type Raw struct {
	Value   string
	Present bool
}

// RawOf wraps a stored string.
func RawOf(s string) Raw {
	return Raw{Value: s, Present: true}
}

// Absent is the Raw for a missing cell.
func Absent() Raw {
	return Raw{}
}

// RawFromValue normalises a scanned column value. Strings and byte slices are
// kept; NULL and numeric values (left behind by spreadsheet imports) mean
// "no data".
func RawFromValue(v any) Raw {
	switch t := v.(type) {
	case string:
		return RawOf(t)
	case []byte:
		return RawOf(string(t))
	default:
		return Absent()
	}
}

// String returns the stored text, or "-" when absent.
func (r Raw) String() string {
	if !r.Present {
		return string(KindDash)
	}
	return r.Value
}
