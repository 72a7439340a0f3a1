package date

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Slash day first", "25/12/2023", "twenty-five December twenty twenty-three"},
		{"ISO year first", "2023-12-25", "twenty-five December twenty twenty-three"},
		{"Dash day first", "25-12-2023", "twenty-five December twenty twenty-three"},
		{"Month name", "December 25, 2023", "twenty-five December twenty twenty-three"},
		{"Lower case month name", "born on march 5, 1987.", "born on five March nineteen eighty-seven."},
		{"Zero padded day", "01/02/1999", "one February nineteen ninety-nine"},
		{"Embedded in sentence", "Due 05/06/2024 at noon", "Due five June twenty twenty-four at noon"},
		{
			"Several shapes in one text",
			"From 01/01/2000 to 2000-12-31",
			"From one January twenty zero to thirty-one December twenty zero",
		},
		{"Not a month name", "Chapter 5, 2023", "Chapter 5, 2023"},
		{"Three digit year is not a date", "25/12/999", "25/12/999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := n.Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeWithoutDatesIsIdentity(t *testing.T) {
	n := NewNormalizer(nil)
	inputs := []string{
		"",
		"plain words only",
		"$100 and 5kg",
		"12/2023 is not a full date",
		"नमस्ते दुनिया",
	}
	for _, in := range inputs {
		got, err := n.Normalize(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestNormalizeMonthOutOfRange(t *testing.T) {
	n := NewNormalizer(nil)

	_, err := n.Normalize("on 25/13/2023")
	require.Error(t, err)

	var nerr *domain.NormalizationError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, StageName, nerr.Stage)
	assert.Equal(t, domain.Span{Start: 3, End: 13}, nerr.Span)
	assert.Equal(t, "25/13/2023", nerr.Text)
	assert.ErrorIs(t, err, domain.ErrMonthOutOfRange)

	_, err = n.Normalize("2023-00-10")
	assert.ErrorIs(t, err, domain.ErrMonthOutOfRange)
}

func TestPatternFieldOrderIsExplicit(t *testing.T) {
	// A custom pattern can declare its own order without relying on field widths.
	n := NewNormalizer(nil, Pattern{
		Name:  "YY.MM.DD",
		Expr:  regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{2})`),
		Order: YearMonthDay,
	})

	got, err := n.Normalize("99.01.15")
	require.NoError(t, err)
	assert.Equal(t, "fifteen January ninety-nine", got)
}

func TestSpell(t *testing.T) {
	got, err := Spell(MonthNameDayYear, "July", "4", "1776")
	require.NoError(t, err)
	assert.Equal(t, "four July seventeen seventy-six", got)

	_, err = Spell(MonthNameDayYear, "Smarch", "4", "1776")
	assert.ErrorIs(t, err, domain.ErrMonthOutOfRange)

	assert.Equal(t, "year-month-day", YearMonthDay.String())
}
