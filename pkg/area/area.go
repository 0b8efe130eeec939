// Package area extracts the numeric magnitude from free-text land sizes
// such as "12.5 acres" or "Approx. 3 ha".
package area

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// Measure is a parsed land size. Unit is whatever text follows the first
// number, trimmed; it may be empty.
type Measure struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Parse returns the first numeric token of s and the unit text after it.
// ok is false when s carries no number.
func Parse(s string) (m Measure, ok bool) {
	loc := numberRe.FindStringIndex(s)
	if loc == nil {
		return Measure{}, false
	}
	v, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
	if err != nil {
		return Measure{}, false
	}
	unit := strings.TrimSpace(s[loc[1]:])
	// "12.5 acres, irrigated": drop trailing qualifiers
	if i := strings.IndexFunc(unit, func(r rune) bool { return r == ',' || r == ';' || r == '(' }); i >= 0 {
		unit = strings.TrimSpace(unit[:i])
	}
	return Measure{Value: v, Unit: unit}, true
}
