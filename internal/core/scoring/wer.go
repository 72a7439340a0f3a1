package scoring

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// WERName is the score name reported by WER.
const WERName = "wer"

// WER accumulates word edit operations over a corpus. The aggregate is the
// total number of word substitutions, insertions and deletions divided by the
// total number of reference words.
type WER struct {
	edits    int
	refWords int
	hypWords int
	samples  int
}

// NewWER creates an empty word error rate accumulator.
func NewWER() *WER {
	return &WER{}
}

// Name returns the score name.
func (w *WER) Name() string {
	return WERName
}

// Add records one prediction/reference pair.
func (w *WER) Add(prediction, reference string) {
	hyp := strings.Fields(prediction)
	ref := strings.Fields(reference)

	w.edits += WordDistance(hyp, ref)
	w.refWords += len(ref)
	w.hypWords += len(hyp)
	w.samples++
}

// Compute returns the corpus word error rate. With no reference words the
// rate is 0 when no edits were needed and 1 otherwise.
func (w *WER) Compute() domain.Score {
	var value float64
	switch {
	case w.refWords > 0:
		value = float64(w.edits) / float64(w.refWords)
	case w.edits > 0:
		value = 1
	}
	return domain.Score{
		Name:    WERName,
		Value:   value,
		Samples: w.samples,
		Details: map[string]interface{}{
			"edits":           w.edits,
			"reference_words": w.refWords,
			"predicted_words": w.hypWords,
		},
	}
}

// WordDistance returns the Levenshtein distance between two word sequences.
// Each distinct word is mapped to one rune so the rune-level distance equals
// the word-level distance.
func WordDistance(a, b []string) int {
	vocab := make(map[string]rune, len(a)+len(b))
	next := rune(0x100)
	encode := func(words []string) string {
		var sb strings.Builder
		for _, word := range words {
			r, ok := vocab[word]
			if !ok {
				r = next
				vocab[word] = r
				next++
				if next == 0xD800 {
					next = 0xE000
				}
			}
			sb.WriteRune(r)
		}
		return sb.String()
	}
	return levenshtein.ComputeDistance(encode(a), encode(b))
}
