package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/baditaflorin/go_text_normalization/internal/adapters/transliterator"
	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/numeral"
	"github.com/baditaflorin/go_text_normalization/internal/core/orchestrator"
	"github.com/baditaflorin/go_text_normalization/internal/core/pipeline"
	"github.com/baditaflorin/go_text_normalization/internal/core/scoring"
	"github.com/baditaflorin/go_text_normalization/internal/warmup"
)

var sizes = []int{100, 1000, 10000, 100000}

func BenchmarkPipeline(b *testing.B) {
	for _, canonicalize := range []bool{true, false} {
		p, err := pipeline.New(pipeline.WithCanonicalization(canonicalize))
		if err != nil {
			b.Fatal(err)
		}
		for _, size := range sizes {
			text := warmup.GenerateSampleText(size)
			b.Run(fmt.Sprintf("nfc=%v/size=%d", canonicalize, size), func(b *testing.B) {
				b.SetBytes(int64(len(text)))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := p.Normalize(text); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkPipelineParallel(b *testing.B) {
	p, err := pipeline.New()
	if err != nil {
		b.Fatal(err)
	}
	text := warmup.GenerateSampleText(1000)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := p.Normalize(text); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSpell(b *testing.B) {
	for _, n := range []uint64{7, 1999, 1234567, 18446744073709551615} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = numeral.Spell(n)
			}
		})
	}
}

func BenchmarkScorers(b *testing.B) {
	prediction := "twenty-five December twenty twenty-three one hundred dollars five kilograms"
	reference := "twenty-five December twenty twenty-three a hundred dollars five kilogram"

	b.Run("wer", func(b *testing.B) {
		w := scoring.NewWER()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			w.Add(prediction, reference)
		}
		_ = w.Compute()
	})

	b.Run("chrf", func(b *testing.B) {
		c, err := scoring.NewCHRF()
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			c.Add(prediction, reference)
		}
		_ = c.Compute()
	})
}

func BenchmarkRun(b *testing.B) {
	p, err := pipeline.New()
	if err != nil {
		b.Fatal(err)
	}
	pool, err := transliterator.NewPool(transliterator.IdentityFactory{}, 0, nil)
	if err != nil {
		b.Fatal(err)
	}

	records := make([]domain.Record, 1000)
	for i := range records {
		records[i] = domain.Record{
			Input:          fmt.Sprintf("$%d for %dkg on 25/12/2023", i, i%50),
			ExpectedOutput: "reference text",
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scorers, err := scoring.DefaultScorers(nil)
		if err != nil {
			b.Fatal(err)
		}
		runner, err := orchestrator.New(p, pool, scorers)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := runner.Run(context.Background(), records); err != nil {
			b.Fatal(err)
		}
	}
}
