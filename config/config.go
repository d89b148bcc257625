package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr string
	Pass string
}

type HTTP struct {
	Host      string
	Port      int
	BodyLimit int64
}

type Config struct {
	Env   string
	HTTP  HTTP
	DB    DB
	Redis Redis
	JWT   struct {
		Secret   string
		Issuer   string
		ExpHours int
	}

	mu          sync.RWMutex
	corsOrigins []string
}

// CORSOrigins returns the current allow-list. Guarded because the watch
// callback may replace it while requests are in flight.
func (c *Config) CORSOrigins() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.corsOrigins
}

func (c *Config) setCORSOrigins(origins []string) {
	c.mu.Lock()
	c.corsOrigins = origins
	c.mu.Unlock()
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("env", "dev")
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 9400)
	v.SetDefault("http.body_limit", 1<<20) // 1MB
	v.SetDefault("http.cors_origins", []string{"*"})
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "stockguard")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.pass", "")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTP: HTTP{
			Host:      v.GetString("http.host"),
			Port:      v.GetInt("http.port"),
			BodyLimit: v.GetInt64("http.body_limit"),
		},
		DB:    DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		Redis: Redis{Addr: v.GetString("redis.addr"), Pass: v.GetString("redis.pass")},
	}
	cfg.setCORSOrigins(v.GetStringSlice("http.cors_origins"))
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "stockguard"
	}
	cfg.JWT.ExpHours = v.GetInt("jwt.exp_hours")
	if cfg.JWT.ExpHours <= 0 {
		cfg.JWT.ExpHours = 24
	}

	// Hot-reload the CORS allow-list so origin changes do not need a restart.
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg.setCORSOrigins(v.GetStringSlice("http.cors_origins"))
	})
	v.WatchConfig()

	return cfg, nil
}
