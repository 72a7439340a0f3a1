package textnormalization

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

type upperStage struct{}

func (upperStage) Name() string { return "upper" }

func (upperStage) Normalize(text string) (string, error) {
	return strings.ToUpper(text), nil
}

func TestNormalize(t *testing.T) {
	tn, err := New()
	require.NoError(t, err)
	defer tn.Close()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "slash date", in: "25/12/2023", want: "twenty-five December twenty twenty-three"},
		{name: "iso date", in: "2023-12-25", want: "twenty-five December twenty twenty-three"},
		{name: "month name date", in: "December 25, 2023", want: "twenty-five December twenty twenty-three"},
		{name: "currency", in: "$100", want: "one hundred dollars"},
		{name: "unit", in: "5kg", want: "five kilograms"},
		{name: "plain text", in: "nothing to do here", want: "nothing to do here"},
		{name: "mixed", in: "Paid ₹2500 for 3L on 01-02-2024", want: "Paid two thousand five hundred rupees for three liters on one February twenty twenty-four"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tn.Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizationError(t *testing.T) {
	tn, err := New()
	require.NoError(t, err)
	defer tn.Close()

	_, err = tn.Normalize("due 31/13/2023")
	var nerr *NormalizationError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "date", nerr.Stage)
	assert.Equal(t, domain.Span{Start: 4, End: 14}, nerr.Span)
	assert.ErrorIs(t, err, domain.ErrMonthOutOfRange)

	assert.Panics(t, func() { tn.MustNormalize("31/13/2023") })
}

func TestOptions(t *testing.T) {
	t.Run("Should use custom stages in order", func(t *testing.T) {
		tn, err := New(WithStages(upperStage{}))
		require.NoError(t, err)
		assert.Equal(t, []string{"upper"}, tn.Stages())
		assert.Equal(t, "$100", tn.MustNormalize("$100"))
	})

	t.Run("Should reject an empty stage list", func(t *testing.T) {
		_, err := New(WithStages())
		assert.Error(t, err)
	})

	t.Run("Should keep decomposed text unless canonicalization is enabled", func(t *testing.T) {
		tn, err := New()
		require.NoError(t, err)
		assert.Equal(t, "cafe\u0301", tn.MustNormalize("cafe\u0301"))
		assert.Equal(t, "\u0958\u093e\u0928\u0942\u0928", tn.MustNormalize("\u0958\u093e\u0928\u0942\u0928"))

		tn, err = New(WithUnicodeCanonicalization(true))
		require.NoError(t, err)
		assert.Equal(t, "caf\u00e9", tn.MustNormalize("cafe\u0301"))
	})

	t.Run("Should log through a custom logger", func(t *testing.T) {
		var buf bytes.Buffer
		custom, err := l.NewStandardFactory().CreateLogger(l.Config{Output: &buf})
		require.NoError(t, err)

		tn, err := New(WithLogger(custom))
		require.NoError(t, err)
		assert.Equal(t, []string{"date", "currency", "unit"}, tn.Stages())
		assert.NoError(t, tn.Close())
	})
}

func TestNormalizeDefault(t *testing.T) {
	got, err := NormalizeDefault("$100")
	require.NoError(t, err)
	assert.Equal(t, "one hundred dollars", got)
}
