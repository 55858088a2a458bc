package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		actual   any
		operator string
		expected any
		want     bool
	}{
		{"eq strings", "pass", "eq", "pass", true},
		{"eq mismatch", "pass", "eq", "fail", false},
		{"eq numeric across types", 3, "eq", 3.0, true},
		{"eq numeric string", "42", "eq", 42, true},
		{"ne", "pass", "ne", "fail", true},
		{"contains", "3 tests failed", "contains", "failed", true},
		{"contains miss", "all green", "contains", "failed", false},
		{"gt", 0.8, "gt", 0.6, true},
		{"gt equal is false", 0.6, "gt", 0.6, false},
		{"gte equal", 0.6, "gte", 0.6, true},
		{"lt", 2, "lt", 5, true},
		{"lte", 5, "lte", 5, true},
		{"numeric from json floats", float64(7), "gt", 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compare(tt.actual, tt.operator, tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareErrors(t *testing.T) {
	_, err := compare("not a number", "gt", 5)
	require.Error(t, err)

	_, err = compare(1, "between", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown condition operator")
}

func TestLooseEqual(t *testing.T) {
	assert.True(t, looseEqual(1, "1"))
	assert.True(t, looseEqual(true, "true"))
	assert.False(t, looseEqual("a", "b"))
}

func TestAsFloat(t *testing.T) {
	f, ok := asFloat("0.75")
	require.True(t, ok)
	assert.InDelta(t, 0.75, f, 1e-9)

	_, ok = asFloat("many")
	assert.False(t, ok)

	_, ok = asFloat(nil)
	assert.False(t, ok)
}
