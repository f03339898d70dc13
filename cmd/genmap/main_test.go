package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestRun_Summary(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"-players", "5", "-days", "7", "-seed", "42", "-summary"}, &buf, fixedNow)
	require.NoError(t, err)

	var out output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, int64(42), out.Seed)
	assert.Nil(t, out.Map)
	assert.Equal(t, 50, out.Derived.ExpectedNodesPerTeam)
	assert.Equal(t, 75, out.Derived.TotalNodes)
	assert.Equal(t, 1, out.Summary["START"])
	assert.Equal(t, 1, out.Summary["TREASURE"])

	total := 0
	for _, n := range out.Summary {
		total += n
	}
	assert.Equal(t, out.Derived.TotalNodes, total)
}

func TestRun_Deterministic(t *testing.T) {
	args := []string{"-seed", "7", "-pool", "500000000", "-teams", "2"}

	var a, b bytes.Buffer
	require.NoError(t, run(args, &a, fixedNow))
	require.NoError(t, run(args, &b, fixedNow))

	assert.JSONEq(t, a.String(), b.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad pool", []string{"-pool", "lots"}},
		{"zero teams", []string{"-teams", "0"}},
		{"unknown difficulty", []string{"-difficulty", "nightmare"}},
		{"unknown flag", []string{"-colour", "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Error(t, run(tt.args, &buf, fixedNow))
		})
	}
}
