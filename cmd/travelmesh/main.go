package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkanthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/travelmesh/agent"
	"github.com/hupe1980/travelmesh/config"
	"github.com/hupe1980/travelmesh/conversation"
	"github.com/hupe1980/travelmesh/coordinator"
	"github.com/hupe1980/travelmesh/core"
	"github.com/hupe1980/travelmesh/events"
	"github.com/hupe1980/travelmesh/httpapi"
	"github.com/hupe1980/travelmesh/logging"
	"github.com/hupe1980/travelmesh/metrics"
	"github.com/hupe1980/travelmesh/model"
	"github.com/hupe1980/travelmesh/model/anthropic"
	"github.com/hupe1980/travelmesh/model/openai"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format, false)

	logger.Info("config loaded",
		"port", cfg.Server.Port,
		"store", cfg.Store.Backend,
		"model_provider", cfg.Model.Provider,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Conversation store
	var store core.ConversationStore
	switch cfg.Store.Backend {
	case "postgres":
		pgStore, err := conversation.NewPostgresStore(ctx, cfg.Store.DSN, func(o *conversation.PostgresStoreOptions) {
			o.MaxConns = cfg.Store.MaxConns
			o.MinConns = cfg.Store.MinConns
		})
		if err != nil {
			return fmt.Errorf("postgres store: %w", err)
		}
		defer pgStore.Close()
		store = pgStore
		logger.Info("postgres connected")
	default:
		store = conversation.NewInMemoryStore()
	}

	// Event stream (optional)
	var publisher events.Publisher = events.NoOpPublisher{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.ConnectNATS(ctx, cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("nats: %w", err)
		}
		defer func() { _ = natsPub.Close() }()
		publisher = natsPub
		logger.Info("nats connected", "url", cfg.NATS.URL)
	}

	// LLM backend
	llm, err := buildModel(cfg.Model)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}

	// Specialist agents
	agents := []core.Agent{
		agent.NewFlightAgent(llm, func(o *agent.ModelAgentOptions) { o.Logger = logger }),
		agent.NewHotelAgent(llm, func(o *agent.ModelAgentOptions) { o.Logger = logger }),
		agent.NewActivityAgent(llm, func(o *agent.ModelAgentOptions) { o.Logger = logger }),
	}

	// Telemetry
	instruments, err := metrics.NewInstruments()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// Coordinator
	coord, err := coordinator.New(agents, func(o *coordinator.Options) {
		o.Store = store
		o.Logger = logger
		o.Publisher = publisher
		o.Hooks = instruments.Hooks()
		o.MaxConcurrent = cfg.Coordination.MaxConcurrent
		o.ChatTimeout = cfg.Coordination.ChatTimeout
		o.PlanTimeout = cfg.Coordination.PlanTimeout
		o.FallbackAgent = cfg.Coordination.FallbackAgent
	})
	if err != nil {
		return fmt.Errorf("coordinator: %w", err)
	}
	defer coord.Close()

	coord.StartSweeper(ctx, cfg.Store.SweepInterval, cfg.Store.MaxIdle)

	// HTTP
	router := httpapi.NewRouter(coord, func(o *httpapi.RouterOptions) {
		o.Logger = logger
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// buildModel selects the LLM backend for the specialist agents.
func buildModel(cfg config.Model) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Name != "" {
				o.Model = cfg.Name
			}
			o.APIKey = cfg.APIKey
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Name != "" {
				o.Model = sdkanthropic.Model(cfg.Name)
			}
			o.APIKey = cfg.APIKey
		}), nil
	case "mock":
		return model.NewMockModel("mock"), nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", cfg.Provider)
	}
}
