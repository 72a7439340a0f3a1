package textnormalization

import (
	"os"

	"github.com/baditaflorin/go_text_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// createDefaultLogger returns the logger used when none is configured: text
// output on stderr, warnings and errors only.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewFromOptions(logger.Options{
		Output: os.Stderr,
		Level:  logger.LevelWarn,
	})
}
