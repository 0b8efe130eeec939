package entities

import (
	"bytes"
	"encoding/json"
	"strings"

	"agri/pkg/apperrors"
)

// StringList is an ordered list of strings that also accepts a bare string
// on the wire: "Urea" decodes to ["Urea"].
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*l = StringList{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = NormalizeList([]string{s})
		return nil
	case b[0] == '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return &apperrors.UnexpectedShapeError{Field: "fertilizers", Got: "non-string list item"}
			}
			out = append(out, s)
		}
		*l = NormalizeList(out)
		return nil
	default:
		return &apperrors.UnexpectedShapeError{Field: "fertilizers", Got: jsonKind(b[0])}
	}
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// NormalizeList trims entries and drops blanks. Applying it twice is the
// same as applying it once.
func NormalizeList(in []string) StringList {
	out := make(StringList, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func jsonKind(c byte) string {
	switch {
	case c == '{':
		return "object"
	case c == 't' || c == 'f':
		return "boolean"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	}
	return "value"
}
