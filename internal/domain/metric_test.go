package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric_JSON(t *testing.T) {
	payload := struct {
		A Metric `json:"a"`
		B Metric `json:"b"`
		C Metric `json:"c"`
	}{Defined(1.5), Undefined(), Defined(math.Inf(1))}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null,"c":null}`, string(data))

	var decoded struct {
		A Metric `json:"a"`
		B Metric `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":2,"b":null}`), &decoded))
	assert.Equal(t, Defined(2), decoded.A)
	assert.False(t, decoded.B.IsDefined())
	assert.Equal(t, 7.0, decoded.B.Or(7))
}

func TestKPISet_GetMissingKey(t *testing.T) {
	assert.False(t, KPISet{}.Get(KPINPV).IsDefined())
}

func TestRoles(t *testing.T) {
	for _, name := range []string{"admin", "analyst", "viewer"} {
		id, ok := ParseRole(name)
		require.True(t, ok)
		assert.Equal(t, name, RoleName(id))
	}

	_, ok := ParseRole("root")
	assert.False(t, ok)
	assert.Equal(t, "unknown", RoleName(99))
}
