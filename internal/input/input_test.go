package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Age(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantOK  bool
		wantMsg string
		wantVal float64
	}{
		{name: "valid age", raw: "25", wantOK: true, wantVal: 25},
		{name: "valid age with spaces", raw: "  42  ", wantOK: true, wantVal: 42},
		{name: "upper bound", raw: "150", wantOK: true, wantVal: 150},
		{name: "empty", raw: "", wantMsg: "Input cannot be empty."},
		{name: "blank", raw: "   ", wantMsg: "Input cannot be empty."},
		{name: "non numeric", raw: "abc", wantMsg: "Please enter a valid number."},
		{name: "fractional age", raw: "25.5", wantMsg: "Age should be a whole number (e.g., 25)."},
		{name: "zero", raw: "0", wantMsg: "Please enter a positive number."},
		{name: "negative", raw: "-3", wantMsg: "Please enter a positive number."},
		{name: "unrealistic", raw: "200", wantMsg: "Please enter a realistic age (max 150)."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(tt.raw, FieldAge)

			require.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, tt.wantVal, res.Value)
		})
	}
}

func TestValidate_Lifespan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantOK  bool
		wantMsg string
		wantVal float64
	}{
		{name: "valid lifespan", raw: "80", wantOK: true, wantVal: 80},
		{name: "fractional lifespan allowed", raw: "85.5", wantOK: true, wantVal: 85.5},
		{name: "minimum", raw: "10", wantOK: true, wantVal: 10},
		{name: "below minimum", raw: "5", wantMsg: "Lifespan should be at least 10 years."},
		{name: "no upper bound", raw: "200", wantOK: true, wantVal: 200},
		{name: "non numeric", raw: "eighty", wantMsg: "Please enter a valid number."},
		{name: "negative", raw: "-10", wantMsg: "Please enter a positive number."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(tt.raw, FieldLifespan)

			require.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, tt.wantVal, res.Value)
		})
	}
}
