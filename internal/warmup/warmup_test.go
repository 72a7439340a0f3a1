package warmup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_normalization/internal/adapters/transliterator"
	"github.com/baditaflorin/go_text_normalization/internal/core/pipeline"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

type failingFactory struct{}

func (failingFactory) New(lang string) (ports.Transliterator, error) {
	return nil, errors.New("no model for " + lang)
}

func TestWarmUp(t *testing.T) {
	pool, err := transliterator.NewPool(transliterator.IdentityFactory{}, 4, nil)
	require.NoError(t, err)
	p, err := pipeline.New()
	require.NoError(t, err)

	cfg := DefaultWarmupConfig()
	cfg.Languages = []string{"hi", "ta"}

	wm := NewManager(nil, cfg)
	wm.RegisterFactory(pool)
	wm.RegisterNormalizer(p)

	require.NoError(t, wm.WarmUp(context.Background()))
	assert.ElementsMatch(t, []string{"hi", "ta"}, pool.Languages())
}

func TestWarmUpFailsOnEngineError(t *testing.T) {
	cfg := DefaultWarmupConfig()
	cfg.Languages = []string{"xx"}

	wm := NewManager(nil, cfg)
	wm.RegisterFactory(failingFactory{})
	err := wm.WarmUp(context.Background())
	assert.ErrorContains(t, err, "xx")
}

func TestGenerateSampleText(t *testing.T) {
	text := GenerateSampleText(200)
	assert.LessOrEqual(t, len(text), 200)
	assert.Contains(t, text, "25/12/2023")

	p, err := pipeline.New()
	require.NoError(t, err)
	_, err = p.Normalize(GenerateSampleText(5000))
	assert.NoError(t, err)

	assert.Equal(t, "", GenerateSampleText(0))
}
