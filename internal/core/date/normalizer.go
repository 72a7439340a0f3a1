// Package date rewrites embedded calendar dates as spoken phrases of the form
// "<day words> <Month> <year words>".
package date

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/numeral"
	"github.com/baditaflorin/go_text_normalization/internal/core/rewrite"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// StageName identifies the date stage in errors and logs.
const StageName = "date"

// FieldOrder states how the three capture groups of a Pattern map to fields.
type FieldOrder int

const (
	// DayMonthYear captures (day, month numeral, year).
	DayMonthYear FieldOrder = iota
	// YearMonthDay captures (year, month numeral, day).
	YearMonthDay
	// MonthNameDayYear captures (month name, day, year).
	MonthNameDayYear
)

func (o FieldOrder) String() string {
	switch o {
	case DayMonthYear:
		return "day-month-year"
	case YearMonthDay:
		return "year-month-day"
	case MonthNameDayYear:
		return "monthname-day-year"
	default:
		return fmt.Sprintf("FieldOrder(%d)", int(o))
	}
}

// Pattern is one accepted date shape.
type Pattern struct {
	Name  string
	Expr  *regexp.Regexp
	Order FieldOrder
}

// Months lists the canonical month names, January first.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthIndex = func() map[string]int {
	m := make(map[string]int, len(Months))
	for i, name := range Months {
		m[strings.ToLower(name)] = i + 1
	}
	return m
}()

// DefaultPatterns returns the accepted date shapes in application order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: "DD/MM/YYYY", Expr: regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`), Order: DayMonthYear},
		{Name: "YYYY-MM-DD", Expr: regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), Order: YearMonthDay},
		{Name: "DD-MM-YYYY", Expr: regexp.MustCompile(`(\d{2})-(\d{2})-(\d{4})`), Order: DayMonthYear},
		{
			Name:  "MonthName D, YYYY",
			Expr:  regexp.MustCompile(`(?i)\b(` + strings.Join(Months[:], "|") + `) (\d{1,2}), (\d{4})`),
			Order: MonthNameDayYear,
		},
	}
}

// Normalizer rewrites every recognized date in a text.
type Normalizer struct {
	patterns []Pattern
	logger   ports.Logger
}

// NewNormalizer creates a date normalizer. Without patterns it uses DefaultPatterns.
func NewNormalizer(logger ports.Logger, patterns ...Pattern) *Normalizer {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Normalizer{patterns: patterns, logger: ports.OrNop(logger)}
}

// Name returns the stage name.
func (n *Normalizer) Name() string {
	return StageName
}

// Normalize runs one substitution pass per pattern, in order, each pass over
// the output of the previous one.
func (n *Normalizer) Normalize(text string) (string, error) {
	for _, p := range n.patterns {
		order := p.Order
		out, count, err := rewrite.All(StageName, p.Expr, text, func(g []string) (string, error) {
			return Spell(order, g[1], g[2], g[3])
		})
		if err != nil {
			n.logger.Error("Date normalization failed", "pattern", p.Name, "error", err)
			return "", err
		}
		if count > 0 {
			n.logger.Debug("Rewrote dates", "pattern", p.Name, "matches", count)
		}
		text = out
	}
	return text, nil
}

// Spell renders three captured fields, interpreted according to order.
func Spell(order FieldOrder, a, b, c string) (string, error) {
	var day, month, year string
	var monthNumber int

	switch order {
	case DayMonthYear:
		day, month, year = a, b, c
	case YearMonthDay:
		year, month, day = a, b, c
	case MonthNameDayYear:
		idx, ok := monthIndex[strings.ToLower(a)]
		if !ok {
			return "", fmt.Errorf("month name %q: %w", a, domain.ErrMonthOutOfRange)
		}
		monthNumber = idx
		day, year = b, c
	default:
		return "", fmt.Errorf("unknown field order %v", order)
	}

	if monthNumber == 0 {
		m, err := numeral.Parse(month)
		if err != nil {
			return "", err
		}
		if m < 1 || m > 12 {
			return "", fmt.Errorf("month %s: %w", month, domain.ErrMonthOutOfRange)
		}
		monthNumber = int(m)
	}

	dayWords, err := numeral.SpellString(day)
	if err != nil {
		return "", err
	}
	yearWords, err := numeral.SpellYear(year)
	if err != nil {
		return "", err
	}
	return dayWords + " " + Months[monthNumber-1] + " " + yearWords, nil
}
