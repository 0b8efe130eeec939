package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri/pkg/apperrors"
)

func TestStringListAcceptsScalar(t *testing.T) {
	var fromScalar, fromList Plant
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Rice","fertilizers":"Urea"}`), &fromScalar))
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Rice","fertilizers":["Urea"]}`), &fromList))

	assert.Equal(t, StringList{"Urea"}, fromScalar.Fertilizers)
	assert.Equal(t, fromList.Fertilizers, fromScalar.Fertilizers)
}

func TestStringListKeepsOrder(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`[" Urea ", "", "TSP", "MOP"]`), &l))
	assert.Equal(t, StringList{"Urea", "TSP", "MOP"}, l)
}

func TestStringListNullAndEmpty(t *testing.T) {
	for _, in := range []string{`null`, `""`, `[]`, `"   "`} {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(in), &l), in)
		assert.Empty(t, l, in)
	}
}

func TestStringListRejectsOtherKinds(t *testing.T) {
	for _, in := range []string{`42`, `{"a":1}`, `true`, `[1,2]`} {
		var l StringList
		err := json.Unmarshal([]byte(in), &l)
		assert.ErrorIs(t, err, apperrors.ErrUnexpectedShape, in)
	}
}

func TestNormalizeListIdempotent(t *testing.T) {
	in := []string{" Urea", "", "TSP ", "Urea"}
	once := NormalizeList(in)
	twice := NormalizeList(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, StringList{"Urea", "TSP", "Urea"}, once)
}

func TestStringListMarshalNilAsEmptyList(t *testing.T) {
	b, err := json.Marshal(Disease{Name: "Blast"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"fertilizers":[]`)
}
