package edudata

import (
	"sort"
	"strconv"
	"strings"
)

type filterKind uint8

const (
	filterString filterKind = iota
	filterInt
	filterFloat
)

// FilterValue is a scalar query parameter value. The portal is
// authoritative about which keys and values are meaningful, no
// validation happens on this side.
type FilterValue struct {
	kind filterKind
	str  string
	num  int64
	real float64
}

func String(v string) FilterValue {
	return FilterValue{kind: filterString, str: v}
}

func Int(v int64) FilterValue {
	return FilterValue{kind: filterInt, num: v}
}

func Float(v float64) FilterValue {
	return FilterValue{kind: filterFloat, real: v}
}

func (v FilterValue) String() string {
	switch v.kind {
	case filterInt:
		return strconv.FormatInt(v.num, 10)
	case filterFloat:
		return strconv.FormatFloat(v.real, 'f', -1, 64)
	default:
		return v.str
	}
}

// Filters narrows results by column value, e.g. {"fips": Int(11)}.
type Filters map[string]FilterValue

// Encode renders the filters as key=value pairs joined by "&", keys in
// lexicographic order so generated query strings are reproducible.
// Values pass through verbatim, the live service does not expect
// percent-encoding for the column values it accepts.
func (f Filters) Encode() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out strings.Builder
	for i, k := range keys {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(k)
		out.WriteByte('=')
		out.WriteString(f[k].String())
	}
	return out.String()
}
