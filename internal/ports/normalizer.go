package ports

// Stage is one text-in, text-out rewriting step of the normalization pipeline.
// Implementations must be pure functions of their input and static tables.
type Stage interface {
	Name() string
	Normalize(text string) (string, error)
}

// Normalizer runs a complete normalization over a text.
type Normalizer interface {
	Normalize(text string) (string, error)
}
