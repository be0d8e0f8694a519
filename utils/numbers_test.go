package utils_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shamshad-ansari/fitpro-backend/utils"
)

func TestParseNum(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 42.5, 42.5},
		{"int", 7, 7},
		{"numeric string", "12.5", 12.5},
		{"integer string", "300", 300},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"bool", true, 0},
		{"map", map[string]any{"x": 1}, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"json.Number", json.Number("99.9"), 99.9},
		{"bad json.Number", json.Number("nope"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ParseNum(tt.in))
		})
	}
}

func TestParseNum_NeverNaN(t *testing.T) {
	inputs := []any{nil, math.NaN(), "NaN", "abc", math.Inf(-1), struct{}{}}
	for _, in := range inputs {
		assert.False(t, math.IsNaN(utils.ParseNum(in)))
	}
}
