package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want *string
	}{
		{"plain", "hello", strPtr("hello")},
		{"trimmed", "  spaced  ", strPtr("spaced")},
		{"empty", "", nil},
		{"undefined token", "undefined", nil},
		{"null token", "null", nil},
		{"whitespace only", "   ", nil},
		{"nil", nil, nil},
		{"number", 42.0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptionalString(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestOptionalFloat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want *float64
	}{
		{"json number", 12.5, floatPtr(12.5)},
		{"numeric string", "99.9", floatPtr(99.9)},
		{"spaced string", " 7 ", floatPtr(7)},
		{"empty", "", nil},
		{"undefined", "undefined", nil},
		{"null", "null", nil},
		{"garbage", "abc", nil},
		{"nil", nil, nil},
		{"bool", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptionalFloat(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestOptionalUint(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want *uint
	}{
		{"json number", 3.0, uintPtr(3)},
		{"numeric string", "42", uintPtr(42)},
		{"negative number", -1.0, nil},
		{"negative string", "-1", nil},
		{"empty", "", nil},
		{"undefined", "undefined", nil},
		{"garbage", "x", nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptionalUint(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestOptionalDate(t *testing.T) {
	got := OptionalDate("2026-01-15")
	require.NotNil(t, got)
	assert.Equal(t, "2026-01-15", got.Time().Format("2006-01-02"))

	got = OptionalDate("2026-01-15T08:30:00Z")
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Time().Hour())

	for _, in := range []interface{}{"", "undefined", "null", "not a date", nil, 12.0} {
		assert.Nil(t, OptionalDate(in), "input %v", in)
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", 1.5, 1.5},
		{"float32", float32(2.5), 2.5},
		{"int64", int64(3), 3},
		{"int", 4, 4},
		{"bytes", []byte("5.5"), 5.5},
		{"string", "6.25", 6.25},
		{"garbage string", "x", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CoerceFloat(tt.in), 1e-9)
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		coords string
		lat    *float64
		long   *float64
	}{
		{"plain pair", "24.71,46.67", floatPtr(24.71), floatPtr(46.67)},
		{"spaced pair", " 24.71 , 46.67 ", floatPtr(24.71), floatPtr(46.67)},
		{"negative values", "-33.9,18.4", floatPtr(-33.9), floatPtr(18.4)},
		{"empty", "", nil, nil},
		{"single value", "24.71", nil, nil},
		{"three values", "1,2,3", nil, nil},
		{"non numeric", "a,b", nil, nil},
		{"half numeric", "24.71,b", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, long := ParseCoordinates(tt.coords)
			if tt.lat == nil {
				assert.Nil(t, lat)
				assert.Nil(t, long)
				return
			}
			require.NotNil(t, lat)
			require.NotNil(t, long)
			assert.InDelta(t, *tt.lat, *lat, 1e-9)
			assert.InDelta(t, *tt.long, *long, 1e-9)
		})
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func uintPtr(u uint) *uint        { return &u }
