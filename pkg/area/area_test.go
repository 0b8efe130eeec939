package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Measure
		ok   bool
	}{
		{"12.5 acres", Measure{12.5, "acres"}, true},
		{"40", Measure{40, ""}, true},
		{"Approx. 3 ha", Measure{3, "ha"}, true},
		{"7 acres, irrigated", Measure{7, "acres"}, true},
		{"2.75ac (north plot)", Measure{2.75, "ac"}, true},
		{"unknown", Measure{}, false},
		{"", Measure{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Parse(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
