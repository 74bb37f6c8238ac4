package main

import (
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-form/config"
	"ulascansenturk/weather-form/internal/api"
	"ulascansenturk/weather-form/internal/api/v1/handlers"
	"ulascansenturk/weather-form/internal/providers"
	"ulascansenturk/weather-form/internal/service"
	"ulascansenturk/weather-form/internal/telemetry"
	"ulascansenturk/weather-form/internal/web"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()
	log.Logger = logger

	if err := conf.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	shutdownTracer, err := telemetry.InitTracer(conf.ServiceName, conf.ZipkinURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load templates")
	}

	weatherProvider := providers.NewOpenWeatherMap(
		conf.OpenWeatherMapAPIKey,
		conf.OpenWeatherMapBaseURL,
		conf.ProviderTimeout,
	)
	lookupService := service.NewLookupService(weatherProvider)

	handler := handlers.NewWeatherHandler(lookupService, templates, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           api.NewRouter(handler, logger),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
		if tracerErr := shutdownTracer(shutdownCtx); tracerErr != nil {
			logger.Error().Err(tracerErr).Msg("tracer shutdown failed")
		}
	})

	logger.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		logger.Fatal().Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
	logger.Info().Msg("server stopped")
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(shutdownCtx context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
