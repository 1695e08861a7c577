package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/budgetai/backend/internal/engine"
	"github.com/budgetai/backend/internal/models"
	"github.com/budgetai/backend/internal/router"
	"github.com/budgetai/backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			BudgetAI backend
// @description	The backend for BudgetAI, an AI-assisted budgeting and forecasting dashboard.
func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// All application state is session-lived. The default DSN is an
	// in-memory database that is discarded on shutdown; set DB_DSN to
	// a file path to keep state across restarts during development.
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = ":memory:"
	}

	err := models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	opts := engine.Options{
		Latency: time.Second,
	}

	// A fixed seed makes the mock engines deterministic, which is useful
	// when developing against the API.
	if seed, ok := os.LookupEnv("ENGINE_SEED"); ok {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			log.Fatal().Msgf("ENGINE_SEED is not a valid integer: %s", err.Error())
		}
		opts.Seed = &parsed
	}

	if latency, ok := os.LookupEnv("ENGINE_LATENCY"); ok {
		parsed, err := time.ParseDuration(latency)
		if err != nil {
			log.Fatal().Msgf("ENGINE_LATENCY is not a valid duration: %s", err.Error())
		}
		opts.Latency = parsed
	}

	s := session.New(engine.New(opts))

	r, err := router.Router(s)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
