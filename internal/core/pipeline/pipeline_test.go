package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_normalization/internal/core/currency"
	"github.com/baditaflorin/go_text_normalization/internal/core/date"
	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/unit"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

func newDefault(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New()
	require.NoError(t, err)
	return p
}

func TestNormalizeScenarios(t *testing.T) {
	p := newDefault(t)

	tests := []struct {
		input string
		want  string
	}{
		{"25/12/2023", "twenty-five December twenty twenty-three"},
		{"2023-12-25", "twenty-five December twenty twenty-three"},
		{"December 25, 2023", "twenty-five December twenty twenty-three"},
		{"$100", "one hundred dollars"},
		{"5kg", "five kilograms"},
		{
			"On 01/02/2024 I paid ₹500 for 2kg of rice",
			"On one February twenty twenty-four I paid five hundred rupees for two kilograms of rice",
		},
		{"nothing to rewrite", "nothing to rewrite"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := p.Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStageOrderIsSignificant(t *testing.T) {
	cur, err := currency.NewNormalizer(nil, nil)
	require.NoError(t, err)
	un, err := unit.NewNormalizer(nil, nil)
	require.NoError(t, err)
	dt := date.NewNormalizer(nil)

	// A date whose trailing field touches a currency symbol and a unit.
	const input = "$25/12/2023 and 2023-12-25m"

	run := func(stages ...ports.Stage) string {
		p, err := New(WithStages(stages...))
		require.NoError(t, err)
		out, err := p.Normalize(input)
		require.NoError(t, err)
		return out
	}

	fixed := run(dt, cur, un)
	assert.Equal(t, "$twenty-five December twenty twenty-three and twenty-five December twenty twenty-threem", fixed)

	reversed := run(un, cur, dt)
	assert.Equal(t, "twenty-five dollars/12/2023 and 2023-12-twenty-five meters", reversed)
	assert.NotEqual(t, fixed, reversed)

	currencyFirst := run(cur, dt, un)
	assert.NotEqual(t, fixed, currencyFirst)
}

func TestNormalizeStopsOnStageError(t *testing.T) {
	p := newDefault(t)

	_, err := p.Normalize("paid $5 on 10/14/2023")
	var nerr *domain.NormalizationError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, date.StageName, nerr.Stage)
	assert.ErrorIs(t, err, domain.ErrMonthOutOfRange)
}

func TestCanonicalization(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune under NFC.
	decomposed := "cafe\u0301 $5"

	t.Run("Should pass text through by default", func(t *testing.T) {
		p := newDefault(t)
		got, err := p.Normalize(decomposed)
		require.NoError(t, err)
		assert.Equal(t, "cafe\u0301 five dollars", got)
	})

	t.Run("Should keep Devanagari nukta letters by default", func(t *testing.T) {
		// U+0958 is a composition exclusion: NFC would split it into U+0915 U+093C.
		qanoon := "\u0958\u093e\u0928\u0942\u0928"
		p := newDefault(t)
		got, err := p.Normalize(qanoon)
		require.NoError(t, err)
		assert.Equal(t, []byte(qanoon), []byte(got))

		nfc, err := New(WithCanonicalization(true))
		require.NoError(t, err)
		got, err = nfc.Normalize(qanoon)
		require.NoError(t, err)
		assert.Equal(t, "\u0915\u093c\u093e\u0928\u0942\u0928", got)
	})

	t.Run("Should compose when enabled", func(t *testing.T) {
		p, err := New(WithCanonicalization(true))
		require.NoError(t, err)
		got, err := p.Normalize(decomposed)
		require.NoError(t, err)
		assert.Equal(t, "caf\u00e9 five dollars", got)
	})
}

func TestObserver(t *testing.T) {
	var seen []string
	p, err := New(WithObserver(func(stage string) { seen = append(seen, stage) }))
	require.NoError(t, err)

	_, err = p.Normalize("$5 and 3kg")
	require.NoError(t, err)
	assert.Equal(t, []string{currency.StageName, unit.StageName}, seen)
	assert.Equal(t, []string{date.StageName, currency.StageName, unit.StageName}, p.StageNames())
}

func TestNewRejectsEmptyStages(t *testing.T) {
	_, err := New(WithStages())
	assert.Error(t, err)

	_, err = New(WithStages(nil))
	assert.Error(t, err)
}

func TestLargeAmounts(t *testing.T) {
	p := newDefault(t)
	got, err := p.Normalize("budget $123456789012345678901234 approved")
	require.NoError(t, err)
	assert.Equal(t, "budget one hundred twenty-three sextillion four hundred fifty-six quintillion "+
		"seven hundred eighty-nine quadrillion twelve trillion three hundred forty-five billion "+
		"six hundred seventy-eight million nine hundred one thousand two hundred thirty-four dollars approved", got)
}
