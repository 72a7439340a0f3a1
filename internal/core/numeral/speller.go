// Package numeral spells non-negative integers as English words.
//
//	1234   -> "one thousand two hundred thirty-four"
//	"1987" -> "nineteen eighty-seven" (year form)
package numeral

import (
	"strconv"
	"strings"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

var onesWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensWords = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scaleWords = [...]string{
	"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	"sextillion", "septillion", "octillion", "nonillion", "decillion",
}

// MaxDigits is the longest numeral the scale table can spell.
const MaxDigits = 3 * len(scaleWords)

// Spell returns the English spelling of n.
func Spell(n uint64) string {
	return spellDigits(strconv.FormatUint(n, 10))
}

// spellDigits spells a digit string without leading zeros, three digits at a
// time from the most significant group.
func spellDigits(digits string) string {
	if digits == "" || digits == "0" {
		return onesWords[0]
	}

	var groups []string
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	for i, end := 0, head; i < len(digits); i, end = end, end+3 {
		chunk, _ := strconv.Atoi(digits[i:end])
		if chunk == 0 {
			continue
		}
		words := spellHundreds(chunk)
		if scale := (len(digits) - end) / 3; scale > 0 {
			words += " " + scaleWords[scale]
		}
		groups = append(groups, words)
	}
	return strings.Join(groups, " ")
}

// spellHundreds spells 1..999.
func spellHundreds(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, onesWords[n])
	case n%10 == 0:
		parts = append(parts, tensWords[n/10])
	default:
		parts = append(parts, tensWords[n/10]+"-"+onesWords[n%10])
	}
	return strings.Join(parts, " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Parse converts a digit string, possibly zero-padded, into its value. It
// fails with ErrNumberTooLarge beyond uint64; use SpellString for longer numerals.
func Parse(s string) (uint64, error) {
	if !isDigits(s) {
		return 0, domain.ErrNotNumeric
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, domain.ErrNumberTooLarge
	}
	return n, nil
}

// SpellString spells a numeral given as a digit string of any length up to
// MaxDigits significant digits. Leading zeros are ignored.
func SpellString(s string) (string, error) {
	if !isDigits(s) {
		return "", domain.ErrNotNumeric
	}
	digits := strings.TrimLeft(s, "0")
	if len(digits) > MaxDigits {
		return "", domain.ErrNumberTooLarge
	}
	return spellDigits(digits), nil
}

// SpellYear spells a year numeral in paired form: the first two digits and
// the last two digits are spelled independently and joined by a space.
// Values outside [1000, 9999] fall back to whole-number spelling.
func SpellYear(s string) (string, error) {
	digits := strings.TrimLeft(s, "0")
	if !isDigits(s) || len(digits) != 4 {
		return SpellString(s)
	}
	n, err := Parse(digits)
	if err != nil {
		return "", err
	}
	return Spell(n/100) + " " + Spell(n%100), nil
}
