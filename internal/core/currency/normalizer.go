// Package currency rewrites currency amounts as "<amount words> <currency name>".
package currency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/baditaflorin/go_text_normalization/internal/core/numeral"
	"github.com/baditaflorin/go_text_normalization/internal/core/rewrite"
	"github.com/baditaflorin/go_text_normalization/internal/core/table"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// StageName identifies the currency stage in errors and logs.
const StageName = "currency"

// Position says on which side of the amount a symbol is written.
type Position int

const (
	// Prefix symbols precede the amount, as in "$100".
	Prefix Position = iota
	// Suffix symbols follow the amount, optionally after one whitespace, as in "100 ₩".
	Suffix
)

// Currency describes one recognized currency symbol.
type Currency struct {
	Name     string
	Position Position
}

// DefaultTable returns the recognized currencies in application order.
func DefaultTable() *table.Table[Currency] {
	return table.MustNew("currency", []table.Entry[Currency]{
		{Key: "$", Value: Currency{Name: "dollars", Position: Prefix}},
		{Key: "₹", Value: Currency{Name: "rupees", Position: Prefix}},
		{Key: "€", Value: Currency{Name: "euros", Position: Prefix}},
		{Key: "£", Value: Currency{Name: "pounds", Position: Prefix}},
		{Key: "¥", Value: Currency{Name: "yen", Position: Prefix}},
		{Key: "₩", Value: Currency{Name: "won", Position: Suffix}},
		{Key: "₽", Value: Currency{Name: "rubles", Position: Suffix}},
		{Key: "﷼", Value: Currency{Name: "riyals", Position: Suffix}},
		{Key: "₫", Value: Currency{Name: "dong", Position: Suffix}},
		{Key: "₺", Value: Currency{Name: "lira", Position: Suffix}},
	})
}

// amountExpr also captures separator groups so that "1,000" or "9.99" can be
// recognized and left untouched instead of being split.
const amountExpr = `(\d+(?:[.,]\d+)*)`

// leadExpr captures a hyphen before the amount, together with the digit in
// front of it when there is one. A hyphen after a digit joins a range such as
// "5-10₩"; any other hyphen is a minus sign.
const leadExpr = `(\d-|-)?`

type rule struct {
	symbol string
	name   string
	expr   *regexp.Regexp
}

// Normalizer rewrites currency amounts, one pass per table entry.
type Normalizer struct {
	rules  []rule
	logger ports.Logger
}

// NewNormalizer builds a currency normalizer over t. A nil table selects DefaultTable.
func NewNormalizer(logger ports.Logger, t *table.Table[Currency]) (*Normalizer, error) {
	if t == nil {
		t = DefaultTable()
	}

	n := &Normalizer{logger: ports.OrNop(logger)}
	for _, e := range t.Entries() {
		sym := regexp.QuoteMeta(e.Key)
		var expr string
		switch e.Value.Position {
		case Prefix:
			expr = leadExpr + sym + amountExpr
		case Suffix:
			expr = leadExpr + amountExpr + `\s?` + sym
		default:
			return nil, fmt.Errorf("currency %q: unknown position %d", e.Key, e.Value.Position)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("currency %q: %w", e.Key, err)
		}
		n.rules = append(n.rules, rule{symbol: e.Key, name: e.Value.Name, expr: re})
	}
	return n, nil
}

// Name returns the stage name.
func (n *Normalizer) Name() string {
	return StageName
}

// Normalize rewrites every plain integer amount. Amounts with thousands
// separators, decimals or a leading minus pass through unchanged. The upper
// bound of a range like "5-10₩" is rewritten and the lower bound kept.
func (n *Normalizer) Normalize(text string) (string, error) {
	for _, r := range n.rules {
		name := r.name
		out, count, err := rewrite.All(StageName, r.expr, text, func(g []string) (string, error) {
			lead := g[1]
			if lead == "-" || strings.ContainsAny(g[2], ".,") {
				return g[0], nil
			}
			words, err := numeral.SpellString(g[2])
			if err != nil {
				return "", err
			}
			return lead + words + " " + name, nil
		})
		if err != nil {
			n.logger.Error("Currency normalization failed", "symbol", r.symbol, "error", err)
			return "", err
		}
		if count > 0 {
			n.logger.Debug("Rewrote currency amounts", "currency", name, "matches", count)
		}
		text = out
	}
	return text, nil
}
