// Package unit rewrites measurements such as "5kg" as "<amount words> <unit name>".
package unit

import (
	"fmt"
	"regexp"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/numeral"
	"github.com/baditaflorin/go_text_normalization/internal/core/rewrite"
	"github.com/baditaflorin/go_text_normalization/internal/core/table"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// StageName identifies the unit stage in errors and logs.
const StageName = "unit"

// DefaultTable returns the recognized unit abbreviations and their plural names.
func DefaultTable() *table.Table[string] {
	return table.MustNew("unit", []table.Entry[string]{
		// length
		{Key: "mm", Value: "millimeters"},
		{Key: "cm", Value: "centimeters"},
		{Key: "m", Value: "meters"},
		{Key: "km", Value: "kilometers"},
		{Key: "in", Value: "inches"},
		{Key: "ft", Value: "feet"},
		{Key: "yd", Value: "yards"},
		{Key: "mi", Value: "miles"},
		// mass
		{Key: "mg", Value: "milligrams"},
		{Key: "kg", Value: "kilograms"},
		{Key: "g", Value: "grams"},
		{Key: "oz", Value: "ounces"},
		// volume
		{Key: "ml", Value: "milliliters"},
		{Key: "L", Value: "liters"},
		{Key: "gal", Value: "gallons"},
		// temperature
		{Key: "°C", Value: "degrees Celsius"},
		{Key: "°F", Value: "degrees Fahrenheit"},
		// energy and power
		{Key: "J", Value: "joules"},
		{Key: "kJ", Value: "kilojoules"},
		{Key: "W", Value: "watts"},
		{Key: "kW", Value: "kilowatts"},
		// pressure and force
		{Key: "Pa", Value: "pascals"},
		{Key: "kPa", Value: "kilopascals"},
		{Key: "N", Value: "newtons"},
		// frequency and electrical
		{Key: "Hz", Value: "hertz"},
		{Key: "A", Value: "amperes"},
		{Key: "V", Value: "volts"},
	})
}

// Normalizer rewrites "<digits><abbreviation>" with no whitespace in between.
type Normalizer struct {
	units  *table.Table[string]
	expr   *regexp.Regexp
	logger ports.Logger
}

// NewNormalizer compiles a single pattern from t. A nil table selects DefaultTable.
// The abbreviation must end at a word boundary, so "5kgs" or "3min" are left alone.
func NewNormalizer(logger ports.Logger, t *table.Table[string]) (*Normalizer, error) {
	if t == nil {
		t = DefaultTable()
	}
	re, err := regexp.Compile(`(\d+)(` + t.Alternation() + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("unit pattern: %w", err)
	}
	return &Normalizer{units: t, expr: re, logger: ports.OrNop(logger)}, nil
}

// Name returns the stage name.
func (n *Normalizer) Name() string {
	return StageName
}

// Normalize rewrites every recognized measurement in a single pass.
func (n *Normalizer) Normalize(text string) (string, error) {
	out, count, err := rewrite.All(StageName, n.expr, text, func(g []string) (string, error) {
		name, ok := n.units.Lookup(g[2])
		if !ok {
			return "", fmt.Errorf("abbreviation %q: %w", g[2], domain.ErrUnknownUnit)
		}
		words, err := numeral.SpellString(g[1])
		if err != nil {
			return "", err
		}
		return words + " " + name, nil
	})
	if err != nil {
		n.logger.Error("Unit normalization failed", "error", err)
		return "", err
	}
	if count > 0 {
		n.logger.Debug("Rewrote measurements", "matches", count)
	}
	return out, nil
}
