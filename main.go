package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockguard/global"
	"stockguard/initialize"
	"stockguard/server"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		host       = flag.String("host", "", "Listen host (overrides config)")
		port       = flag.Int("port", 0, "Listen port (overrides config)")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}
	if *host != "" {
		app.Cfg.HTTP.Host = *host
	}
	if *port != 0 {
		app.Cfg.HTTP.Port = *port
	}

	srv := server.New(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr).Str("env", app.Cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			global.Logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	global.Logger.Info().Msg("shutting down")
	if err := server.Shutdown(srv, 10*time.Second); err != nil {
		global.Logger.Error().Err(err).Msg("shutdown error")
	}
}
