package respond

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri/pkg/apperrors"
)

func TestNumber(t *testing.T) {
	cases := map[string]float64{
		`2`:     2,
		`2.5`:   2.5,
		`"2.5"`: 2.5,
		`" 3 "`: 3,
		`""`:    0,
		`null`:  0,
	}
	for in, want := range cases {
		var v struct {
			N Number `json:"n"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"n":`+in+`}`), &v), in)
		assert.Equal(t, want, float64(v.N), in)
	}

	var v struct {
		N Number `json:"n"`
	}
	err := json.Unmarshal([]byte(`{"n":"two"}`), &v)
	assert.ErrorIs(t, err, apperrors.ErrUnexpectedShape)
}
