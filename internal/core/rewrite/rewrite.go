// Package rewrite applies a regexp substitution pass whose replacement
// function may fail.
package rewrite

import (
	"regexp"

	"github.com/valyala/bytebufferpool"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// Func builds the replacement for one match. groups holds the full match
// followed by the capture groups, as returned by FindStringSubmatch.
type Func func(groups []string) (string, error)

// All replaces every non-overlapping match of re in a single left-to-right
// scan. Replacements are not rescanned. It returns the rewritten text and the
// number of matches. A failing replacement aborts the pass with a
// *domain.NormalizationError naming stage and the offending span.
func All(stage string, re *regexp.Regexp, text string, fn Func) (string, int, error) {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text, 0, nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	last := 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}

		repl, err := fn(groups)
		if err != nil {
			return text, 0, &domain.NormalizationError{
				Stage: stage,
				Span:  domain.Span{Start: loc[0], End: loc[1]},
				Text:  groups[0],
				Err:   err,
			}
		}

		_, _ = buf.WriteString(text[last:loc[0]])
		_, _ = buf.WriteString(repl)
		last = loc[1]
	}
	_, _ = buf.WriteString(text[last:])
	return buf.String(), len(locs), nil
}
