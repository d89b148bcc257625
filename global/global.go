package global

import (
	"os"

	"stockguard/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	Config *config.Config
	// Logger defaults to plain stderr output until initialize configures it
	// for the running environment.
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	Mdb    *gorm.DB
	Rdb    *redis.Client
)
