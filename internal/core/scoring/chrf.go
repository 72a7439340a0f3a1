package scoring

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// CHRFName is the score name reported by CHRF.
const CHRFName = "chrf"

// Default chrF parameters.
const (
	DefaultCharOrder = 6
	DefaultBeta      = 2.0
)

type ngramStats struct {
	hyp   int
	ref   int
	match int
}

// CHRF accumulates character n-gram statistics over a corpus and reports the
// character n-gram F-score on a 0-100 scale. Whitespace is ignored.
type CHRF struct {
	order   int
	beta    float64
	stats   []ngramStats
	samples int
}

// CHRFOption configures a CHRF accumulator.
type CHRFOption func(*CHRF)

// WithCharOrder sets the maximum character n-gram order.
func WithCharOrder(n int) CHRFOption {
	return func(c *CHRF) {
		c.order = n
	}
}

// WithBeta sets the recall weight.
func WithBeta(beta float64) CHRFOption {
	return func(c *CHRF) {
		c.beta = beta
	}
}

// NewCHRF creates an empty chrF accumulator.
func NewCHRF(opts ...CHRFOption) (*CHRF, error) {
	c := &CHRF{order: DefaultCharOrder, beta: DefaultBeta}
	for _, opt := range opts {
		opt(c)
	}
	if c.order < 1 {
		return nil, fmt.Errorf("chrF order must be positive, got %d", c.order)
	}
	if c.beta <= 0 {
		return nil, fmt.Errorf("chrF beta must be greater than 0, got %v", c.beta)
	}
	c.stats = make([]ngramStats, c.order)
	return c, nil
}

// Name returns the score name.
func (c *CHRF) Name() string {
	return CHRFName
}

// Add records one prediction/reference pair.
func (c *CHRF) Add(prediction, reference string) {
	hyp := charsOf(prediction)
	ref := charsOf(reference)

	for n := 1; n <= c.order; n++ {
		hypGrams := ngrams(hyp, n)
		refGrams := ngrams(ref, n)

		st := &c.stats[n-1]
		for g, hc := range hypGrams {
			st.hyp += hc
			if rc, ok := refGrams[g]; ok {
				st.match += min(hc, rc)
			}
		}
		for _, rc := range refGrams {
			st.ref += rc
		}
	}
	c.samples++
}

// Compute averages precision and recall over the n-gram orders that had both
// predicted and reference n-grams, then combines them into the F-beta score.
func (c *CHRF) Compute() domain.Score {
	var avgPrec, avgRec float64
	effective := 0
	for _, st := range c.stats {
		if st.hyp == 0 || st.ref == 0 {
			continue
		}
		avgPrec += float64(st.match) / float64(st.hyp)
		avgRec += float64(st.match) / float64(st.ref)
		effective++
	}

	var value float64
	if effective > 0 {
		avgPrec /= float64(effective)
		avgRec /= float64(effective)
		factor := c.beta * c.beta
		if denom := factor*avgPrec + avgRec; denom > 0 {
			value = 100 * (1 + factor) * avgPrec * avgRec / denom
		}
	}

	return domain.Score{
		Name:    CHRFName,
		Value:   value,
		Samples: c.samples,
		Details: map[string]interface{}{
			"char_order":      c.order,
			"beta":            c.beta,
			"effective_order": effective,
			"precision":       avgPrec,
			"recall":          avgRec,
		},
	}
}

// charsOf returns the NFC runes of s without whitespace.
func charsOf(s string) []rune {
	s = norm.NFC.String(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

func ngrams(chars []rune, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(chars); i++ {
		counts[string(chars[i:i+n])]++
	}
	return counts
}
