package transliterator

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// DefaultPoolSize bounds the number of cached engines.
const DefaultPoolSize = 16

// Pool hands out one engine per language code, building it on first use and
// reusing it afterwards. It is safe for concurrent use.
type Pool struct {
	factory ports.TransliteratorFactory
	engines *lru.Cache[string, ports.Transliterator]
	logger  ports.Logger
}

// NewPool wraps factory with an engine cache of the given size.
func NewPool(factory ports.TransliteratorFactory, size int, logger ports.Logger) (*Pool, error) {
	if factory == nil {
		return nil, errors.New("transliterator factory is required")
	}
	if size <= 0 {
		size = DefaultPoolSize
	}
	cache, err := lru.New[string, ports.Transliterator](size)
	if err != nil {
		return nil, fmt.Errorf("create engine cache: %w", err)
	}
	return &Pool{factory: factory, engines: cache, logger: ports.OrNop(logger)}, nil
}

// New returns the cached engine for lang, creating it when absent.
func (p *Pool) New(lang string) (ports.Transliterator, error) {
	if engine, ok := p.engines.Get(lang); ok {
		return engine, nil
	}
	engine, err := p.factory.New(lang)
	if err != nil {
		return nil, err
	}
	if evicted := p.engines.Add(lang, engine); evicted {
		p.logger.Debug("Evicted transliteration engine", "size", p.engines.Len())
	}
	p.logger.Info("Transliteration engine ready", "language", lang)
	return engine, nil
}

// Languages returns the languages with a cached engine.
func (p *Pool) Languages() []string {
	return p.engines.Keys()
}
