package invoice

import "strconv"

// Number carries a numeric form-field value in two parallel forms: the raw
// text as typed and the coerced value used for derived computation. An empty
// string or a lone minus sign is a routine in-progress typing state, not an
// error.
type Number struct {
	Raw   string
	Value float64
}

// ParseNumber coerces raw text to a Number. Unparsable text, including ""
// and "-", yields value 0 while the text itself is preserved verbatim.
func ParseNumber(raw string) Number {
	n := Number{Raw: raw}
	if raw == "" || raw == "-" {
		return n
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		n.Value = v
	}
	return n
}

// FormatNumber renders v the way a form field would display it, with no
// fixed decimal padding.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
