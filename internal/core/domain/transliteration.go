package domain

// TransliterationKind tags the shape returned by a transliteration engine.
type TransliterationKind int

const (
	// KindText is a single rendered string.
	KindText TransliterationKind = iota
	// KindByLanguage maps language codes to rendered strings.
	KindByLanguage
)

// Transliteration is the tagged result of a transliteration call.
type Transliteration struct {
	Kind       TransliterationKind
	Text       string
	ByLanguage map[string]string
}

// TextResult builds a plain-text Transliteration.
func TextResult(text string) Transliteration {
	return Transliteration{Kind: KindText, Text: text}
}

// ByLanguageResult builds a keyed Transliteration.
func ByLanguageResult(m map[string]string) Transliteration {
	return Transliteration{Kind: KindByLanguage, ByLanguage: m}
}

// Resolve returns the rendered text for lang. Keyed results without an
// entry for lang resolve to the empty string.
func (t Transliteration) Resolve(lang string) string {
	switch t.Kind {
	case KindByLanguage:
		return t.ByLanguage[lang]
	default:
		return t.Text
	}
}
