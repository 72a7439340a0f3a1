package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/table"
)

func TestNormalize(t *testing.T) {
	n, err := NewNormalizer(nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Kilograms", "5kg", "five kilograms"},
		{"Milligrams not shadowed by meters", "250mg", "two hundred fifty milligrams"},
		{"Miles not shadowed by meters", "26mi", "twenty-six miles"},
		{"Milliliters", "330ml", "three hundred thirty milliliters"},
		{"Meters", "100m", "one hundred meters"},
		{"Celsius", "It is 25°C today", "It is twenty-five degrees Celsius today"},
		{"Fahrenheit", "98°F", "ninety-eight degrees Fahrenheit"},
		{"Kilopascals", "101kPa", "one hundred one kilopascals"},
		{"Hertz", "60Hz", "sixty hertz"},
		{"Several units", "3km and 2L", "three kilometers and two liters"},
		{"Trailing punctuation", "Add 5g.", "Add five grams."},
		{"Space between number and unit", "5 kg", "5 kg"},
		{"Longer word after number", "3min", "3min"},
		{"Plural suffix", "5kgs", "5kgs"},
		{"Unknown unit", "7qt", "7qt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultTableHasUniqueKeys(t *testing.T) {
	tbl := DefaultTable()
	seen := map[string]bool{}
	for _, k := range tbl.Keys() {
		assert.False(t, seen[k], "duplicate %q", k)
		seen[k] = true
	}
	assert.Equal(t, 27, tbl.Len())
}

func TestDuplicateUnitRejected(t *testing.T) {
	_, err := table.New("unit", []table.Entry[string]{
		{Key: "mg", Value: "milligrams"},
		{Key: "kg", Value: "kilograms"},
		{Key: "mg", Value: "milligrams"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestCustomTable(t *testing.T) {
	tbl := table.MustNew("unit", []table.Entry[string]{
		{Key: "px", Value: "pixels"},
	})
	n, err := NewNormalizer(nil, tbl)
	require.NoError(t, err)

	got, err := n.Normalize("12px by 5kg")
	require.NoError(t, err)
	assert.Equal(t, "twelve pixels by 5kg", got)
}
