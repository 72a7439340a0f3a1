package transliterator

import (
	"context"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// IdentityEngine returns the normalized text unchanged. It is useful for
// evaluating the normalization stage alone.
type IdentityEngine struct{}

// Transliterate returns text as a plain result.
func (IdentityEngine) Transliterate(_ context.Context, text string) (domain.Transliteration, error) {
	return domain.TextResult(text), nil
}

// IdentityFactory builds IdentityEngines for every language.
type IdentityFactory struct{}

// New returns an IdentityEngine.
func (IdentityFactory) New(string) (ports.Transliterator, error) {
	return IdentityEngine{}, nil
}
