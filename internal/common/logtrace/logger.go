package logtrace

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the process-wide JSON logger on stderr. An empty or
// unknown level falls back to info.
func InitLogger(level ...string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	lvl := zerolog.InfoLevel
	if len(level) > 0 {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level[0])); err == nil && parsed != zerolog.NoLevel {
			lvl = parsed
		}
	}
	zerolog.SetGlobalLevel(lvl)
}
