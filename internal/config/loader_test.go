package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textnorm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Should load defaults when no file is given", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "transliteration_dataset.json", cfg.Run.Input)
		assert.Equal(t, "output_results.json", cfg.Run.Output)
		assert.Equal(t, "hi", cfg.Run.DefaultLanguage)
		assert.Equal(t, "identity", cfg.Transliteration.Mode)
		assert.Equal(t, 30*time.Second, cfg.Transliteration.Timeout)
		assert.Equal(t, 10, cfg.Transliteration.BeamWidth)
		assert.False(t, cfg.Normalization.UnicodeNFC)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("Should apply the YAML file over defaults", func(t *testing.T) {
		path := writeConfig(t, `
run:
  input: data/in.json
  warm_languages: [hi, ta]
transliteration:
  mode: http
  endpoint: http://localhost:9000/translit
  timeout: 5s
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "data/in.json", cfg.Run.Input)
		assert.Equal(t, "output_results.json", cfg.Run.Output)
		assert.Equal(t, []string{"hi", "ta"}, cfg.Run.WarmLanguages)
		assert.Equal(t, "http", cfg.Transliteration.Mode)
		assert.Equal(t, 5*time.Second, cfg.Transliteration.Timeout)
		assert.Equal(t, 10, cfg.Transliteration.BeamWidth)
	})

	t.Run("Should let the environment override the file", func(t *testing.T) {
		path := writeConfig(t, "run:\n  default_language: ta\n")
		t.Setenv("TEXTNORM_RUN_DEFAULT_LANGUAGE", "bn")
		t.Setenv("TEXTNORM_SERVER_READ_TIMEOUT", "45s")
		t.Setenv("TEXTNORM_RUN_WARM_LANGUAGES", "hi,bn")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "bn", cfg.Run.DefaultLanguage)
		assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, []string{"hi", "bn"}, cfg.Run.WarmLanguages)
	})

	t.Run("Should reject an unknown engine mode", func(t *testing.T) {
		path := writeConfig(t, "transliteration:\n  mode: magic\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Should require an absolute endpoint in http mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, "transliteration:\n  mode: http\n"))
		assert.Error(t, err)

		_, err = Load(writeConfig(t, "transliteration:\n  mode: http\n  endpoint: not-a-url\n"))
		assert.Error(t, err)
	})

	t.Run("Should fail on a missing or malformed file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)

		_, err = Load(writeConfig(t, "run: [unclosed"))
		assert.Error(t, err)
	})
}

func TestTransformEnvKey(t *testing.T) {
	assert.Equal(t, "run.default_language", transformEnvKey("RUN_DEFAULT_LANGUAGE"))
	assert.Equal(t, "log.level", transformEnvKey("LOG_LEVEL"))
	assert.Equal(t, "debug", transformEnvKey("DEBUG"))
	assert.Equal(t, "", transformEnvKey("__"))
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, Validate(nil))
}
