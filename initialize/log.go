package initialize

import (
	"os"

	"stockguard/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// Console writer by default; SetupLogger tightens this once config is
	// loaded and the env is known.
	global.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// SetupLogger configures the process logger for the given environment.
// Production logs JSON at info level; everything else keeps the console
// writer at debug.
func SetupLogger(env string) {
	if env == "prod" {
		global.Logger = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
		return
	}
	global.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.DebugLevel)
}
