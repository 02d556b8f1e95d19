package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/logtrace"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db"
	"github.com/tansive/resourcesrv/internal/resourcesrv/server"
)

const shutdownTimeout = 10 * time.Second

func init() {
	logtrace.InitLogger()
}

type cmdoptions struct {
	configFile *string
}

func main() {
	// a missing .env file is not an error
	_ = godotenv.Load()

	slog := log.With().Str("state", "init").Logger()
	// Parse command line flags
	opt := parseFlags()

	slog.Info().Str("config_file", *opt.configFile).Msg("loading config file")
	if err := config.LoadConfig(*opt.configFile); err != nil {
		slog.Error().Str("config_file", *opt.configFile).Err(err).Msg("unable to load config file")
		os.Exit(1)
	}
	logtrace.InitLogger(config.Config().LogLevel)
	slog = log.With().Str("state", "init").Logger()

	ctx := slog.WithContext(context.Background())
	store, err := db.Open(ctx, config.Config().Database)
	if err != nil {
		slog.Error().Err(err).Str("driver", config.Config().Database.Driver).Msg("unable to open database")
		os.Exit(1)
	}
	defer store.Close()
	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error().Err(err).Msg("unable to initialize database schema")
		store.Close()
		os.Exit(1)
	}

	s, err := server.CreateNewServer(db.NewResourceRepository(store))
	if err != nil {
		slog.Error().Err(err).Msg("Unable to create server")
		store.Close()
		os.Exit(1)
	}
	s.MountHandlers()

	srv := &http.Server{
		Addr:              ":" + config.Config().ServerPort,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop <- syscall.SIGTERM
		}
	}()

	sig := <-stop
	log.Info().Str("signal", sig.String()).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func parseFlags() cmdoptions {
	var opt cmdoptions
	opt.configFile = flag.String("config", "", "Path to the config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opt
}
