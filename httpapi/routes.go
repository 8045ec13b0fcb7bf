package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hupe1980/travelmesh/logging"
)

// RouterOptions configures the HTTP router.
type RouterOptions struct {
	// Logger receives request failures. Defaults to NoOpLogger.
	Logger logging.Logger

	// RequestTimeout bounds each request's lifetime at the middleware
	// layer. Defaults to 60s, above the coordinator's own deadlines so
	// the engine times out first and can report per-agent failures.
	RequestTimeout time.Duration
}

// NewRouter mounts the travelmesh API on a chi router wrapped in
// OpenTelemetry HTTP instrumentation.
func NewRouter(engine Engine, optFns ...func(*RouterOptions)) http.Handler {
	opts := RouterOptions{
		Logger:         logging.NoOpLogger{},
		RequestTimeout: 60 * time.Second,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	h := &Handlers{Engine: engine, Logger: opts.Logger}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(opts.RequestTimeout))

	r.Get("/health", h.HandleHealth)
	r.Post("/chat", h.HandleChat)
	r.Post("/agent/{type}/chat", h.HandleAgentChat)
	r.Post("/plan", h.HandlePlan)
	r.Get("/plans", h.HandleListPlans)
	r.Get("/plans/{id}", h.HandleGetPlan)
	r.Get("/conversations", h.HandleConversations)
	r.Get("/stats", h.HandleStats)

	return otelhttp.NewHandler(r, "travelmesh.http")
}
