package domain

import "time"

// DefaultLanguage is used for records that carry no language code.
const DefaultLanguage = "hi"

// Record is one labeled input of an evaluation run.
type Record struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	Language       string `json:"language,omitempty"`
}

// LanguageOr returns the record language, or fallback when the record has none.
// An explicit empty code counts as none: no engine exists for "".
func (r Record) LanguageOr(fallback string) string {
	if r.Language == "" {
		return fallback
	}
	return r.Language
}

// Result holds the outcome of processing one Record.
type Result struct {
	Input           string `json:"input"`
	GeneratedOutput string `json:"generated_output"`
	ExpectedOutput  string `json:"expected_output"`
}

// Score holds the aggregate value of one scorer.
type Score struct {
	Name    string                 `json:"name"`
	Value   float64                `json:"value"`
	Samples int                    `json:"samples"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Report summarizes an evaluation run.
type Report struct {
	RunID    string        `json:"run_id"`
	Records  int           `json:"records"`
	Scores   []Score       `json:"scores"`
	Duration time.Duration `json:"duration"`
}

// ScoreByName returns the score with the given name.
func (r Report) ScoreByName(name string) (Score, bool) {
	for _, s := range r.Scores {
		if s.Name == name {
			return s, true
		}
	}
	return Score{}, false
}
