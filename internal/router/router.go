package router

import (
	"context"
	"net/http"

	_ "health-companion/docs"
	"health-companion/internal/domain/catalog"
	"health-companion/internal/domain/triage"
	"health-companion/internal/middleware"
	"health-companion/internal/observability/metrics"
	"health-companion/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si no viene, se carga la base embebida.
	Catalog *catalog.Catalog

	// Opcional: si no viene, se crea un registry propio por router.
	Registry *prometheus.Registry

	CORSAllowedOrigins []string
	MaxSymptoms        int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	cat := opts.Catalog
	if cat == nil {
		loaded, err := LoadCatalog(context.Background(), CatalogOptions{}, log)
		if err != nil {
			// la base embebida viaja en el binario: si falla es un bug de build
			panic(err)
		}
		cat = loaded
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	httpMetrics := metrics.NewHTTPMetrics(reg)
	triageMetrics := metrics.NewTriageMetrics(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLogger(log, httpMetrics))
	r.Use(middleware.CORS(opts.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	catalogSvc := catalog.NewService(cat)
	triageSvc := triage.NewService(cat, log.With(map[string]any{"module": "triage"}), triageMetrics)

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc)
	triage.RegisterRoutes(r, triageSvc, opts.MaxSymptoms)

	return r
}
