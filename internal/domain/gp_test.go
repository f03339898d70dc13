package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGP_Arithmetic(t *testing.T) {
	a := NewGP(1_000_000)
	b := NewGP(250_000)

	assert.Equal(t, "1250000", a.Add(b).String())
	assert.Equal(t, "750000", a.Sub(b).String())
	assert.Equal(t, "0", b.SubFloor(a).String())
	assert.Equal(t, "3000000", a.MulInt(3).String())
	assert.Equal(t, "333333", a.DivInt(3).String())
	assert.Equal(t, "700000", a.MulFrac(7, 10).String())
	assert.Equal(t, "0", a.DivInt(0).String())
	assert.True(t, GP{}.IsZero())
	assert.Equal(t, 1, a.Cmp(b))
}

func TestGP_LargeValues(t *testing.T) {
	huge := MustParseGP("9223372036854775807")
	sum := huge.Add(NewGP(1))

	assert.Equal(t, "9223372036854775808", sum.String())
	_, fits := sum.Int64()
	assert.False(t, fits)
}

func TestGP_JSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Pot GP `json:"pot"`
	}{Pot: NewGP(42)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pot":"42"}`, string(out))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"string", `"1000000"`, "1000000"},
		{"number", `1000000`, "1000000"},
		{"null", `null`, "0"},
		{"empty string", `""`, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g GP
			require.NoError(t, json.Unmarshal([]byte(tt.input), &g))
			assert.Equal(t, tt.want, g.String())
		})
	}

	var bad GP
	err = json.Unmarshal([]byte(`"12.5"`), &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGP_ImmutableOperands(t *testing.T) {
	a := NewGP(10)
	_ = a.Add(NewGP(5))
	assert.Equal(t, "10", a.String())
}
