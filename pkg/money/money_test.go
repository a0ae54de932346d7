package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDollars_Exact(t *testing.T) {
	assert.Equal(t, Cents(1000), FromDollars(10.00))
	assert.Equal(t, Cents(1), FromDollars(0.01))
	assert.Equal(t, Cents(0), FromDollars(0))
}

func TestFromDollars_FloatNoise(t *testing.T) {
	// 0.1+0.2 style float noise must round to the intended cent.
	assert.Equal(t, Cents(30), FromDollars(0.1+0.2))
	assert.Equal(t, Cents(1999), FromDollars(19.99))
}

func TestFromDecimalString(t *testing.T) {
	c, err := FromDecimalString("12.50")
	require.NoError(t, err)
	assert.Equal(t, Cents(1250), c)

	c, err = FromDecimalString("5")
	require.NoError(t, err)
	assert.Equal(t, Cents(500), c)
}

func TestFromDecimalString_SubCent(t *testing.T) {
	_, err := FromDecimalString("1.005")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub-cent")
}

func TestFromDecimalString_Malformed(t *testing.T) {
	_, err := FromDecimalString("ten dollars")
	require.Error(t, err)
}

func TestDollarsRoundTrip(t *testing.T) {
	for _, c := range []Cents{0, 1, 99, 100, 1999, 123456789} {
		assert.Equal(t, c, FromDollars(c.DollarsFloat()), "round trip for %d", c)
	}
}

func TestMul(t *testing.T) {
	assert.Equal(t, Cents(1000), Cents(500).Mul(2))
	assert.Equal(t, Cents(0), Cents(500).Mul(0))
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Total Cents `json:"total"`
	}

	out, err := json.Marshal(payload{Total: Cents(1999)})
	require.NoError(t, err)
	assert.Equal(t, `{"total":19.99}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"total":19.99}`), &in))
	assert.Equal(t, Cents(1999), in.Total)
}

func TestUnmarshalJSON_WholeNumberAndNull(t *testing.T) {
	var c Cents
	require.NoError(t, c.UnmarshalJSON([]byte("10")))
	assert.Equal(t, Cents(1000), c)

	require.NoError(t, c.UnmarshalJSON([]byte("null")))
	assert.Equal(t, Cents(0), c)
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.50", Cents(1250).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "0.00", Cents(0).String())
}
