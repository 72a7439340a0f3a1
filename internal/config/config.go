// Package config loads textnorm settings from defaults, an optional YAML
// file and TEXTNORM_* environment variables, in increasing precedence.
package config

import (
	"time"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// Config is the complete application configuration.
type Config struct {
	Run             RunConfig             `koanf:"run"`
	Transliteration TransliterationConfig `koanf:"transliteration"`
	Normalization   NormalizationConfig   `koanf:"normalization"`
	Server          ServerConfig          `koanf:"server"`
	Log             LogConfig             `koanf:"log"`
}

// RunConfig controls batch evaluation runs.
type RunConfig struct {
	Input           string   `koanf:"input" validate:"required"`
	Output          string   `koanf:"output" validate:"required"`
	DefaultLanguage string   `koanf:"default_language" validate:"required"`
	WarmLanguages   []string `koanf:"warm_languages" validate:"dive,required"`
	MetricsFile     string   `koanf:"metrics_file"`
}

// TransliterationConfig selects and configures the transliteration engine.
type TransliterationConfig struct {
	Mode      string        `koanf:"mode" validate:"oneof=identity http"`
	Endpoint  string        `koanf:"endpoint" validate:"required_if=Mode http"`
	Timeout   time.Duration `koanf:"timeout" validate:"gt=0"`
	BeamWidth int           `koanf:"beam_width" validate:"gt=0"`
	CacheSize int           `koanf:"cache_size" validate:"gt=0"`
}

// NormalizationConfig tunes the normalization pipeline.
type NormalizationConfig struct {
	UnicodeNFC bool `koanf:"unicode_nfc"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"gt=0"`
	MaxRequestSize int           `koanf:"max_request_size" validate:"gt=0"`
}

// LogConfig configures logging.
type LogConfig struct {
	JSON  bool   `koanf:"json"`
	File  string `koanf:"file"`
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Run: RunConfig{
			Input:           "transliteration_dataset.json",
			Output:          "output_results.json",
			DefaultLanguage: domain.DefaultLanguage,
			WarmLanguages:   []string{},
		},
		Transliteration: TransliterationConfig{
			Mode:      "identity",
			Timeout:   30 * time.Second,
			BeamWidth: 10,
			CacheSize: 16,
		},
		Normalization: NormalizationConfig{
			UnicodeNFC: false,
		},
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxRequestSize: 10 * 1024 * 1024, // 10MB
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
