package respond

import (
	"encoding/json"
	"strconv"
	"strings"

	"agri/pkg/apperrors"
)

// Number accepts 2, 2.5 or "2.5"; form inputs post the latter.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &apperrors.UnexpectedShapeError{Field: "number", Got: strconv.Quote(s)}
	}
	*n = Number(v)
	return nil
}
