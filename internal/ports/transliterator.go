package ports

import (
	"context"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// Transliterator renders normalized text in the script of one language.
type Transliterator interface {
	Transliterate(ctx context.Context, text string) (domain.Transliteration, error)
}

// TransliteratorFactory builds a Transliterator for a language code.
type TransliteratorFactory interface {
	New(lang string) (Transliterator, error)
}
