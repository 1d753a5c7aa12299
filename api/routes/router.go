package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plumbbid/backend/api/controllers"
	"github.com/plumbbid/backend/api/middleware"
	"github.com/plumbbid/backend/internal/biditems"
	"github.com/plumbbid/backend/internal/contractors"
	"github.com/plumbbid/backend/internal/fixtures"
	"github.com/plumbbid/backend/internal/jobs"
	"github.com/plumbbid/backend/pkg/config"
	"github.com/plumbbid/backend/pkg/db"
	"github.com/plumbbid/backend/pkg/logger"
	"github.com/plumbbid/backend/pkg/metrics"
	pkgredis "github.com/plumbbid/backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	registry *prometheus.Registry,
	requestMetrics *metrics.RequestMetrics,
	bidItemService biditems.Service,
	fixtureService fixtures.Service,
	contractorService contractors.Service,
	jobService jobs.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if requestMetrics != nil {
		r.Use(requestMetrics.Middleware())
	}

	// idempotency is disabled when Redis is not wired
	var idemStore pkgredis.IdempotencyStore
	var redisPinger pkgredis.Pinger
	if redisClient != nil {
		idemStore = redisClient
		redisPinger = redisClient
	}
	r.Use(middleware.Idempotency(idemStore, logg))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", controllers.Ping())

		r.Route("/bid-items", func(r chi.Router) {
			r.Get("/", controllers.ListBidItems(bidItemService, logg))
			r.Post("/", controllers.CreateBidItem(bidItemService, logg))
			r.Get("/{bidItemID}", controllers.GetBidItem(bidItemService, logg))
			r.Put("/{bidItemID}", controllers.UpdateBidItem(bidItemService, logg))
			r.Delete("/{bidItemID}", controllers.DeleteBidItem(bidItemService, logg))
		})

		r.Route("/fixture-items", func(r chi.Router) {
			r.Get("/", controllers.ListFixtureItems(fixtureService, logg))
			r.Post("/", controllers.CreateFixtureItem(fixtureService, logg))
			r.Get("/{fixtureItemID}", controllers.GetFixtureItem(fixtureService, logg))
			r.Put("/{fixtureItemID}", controllers.UpdateFixtureItem(fixtureService, logg))
			r.Delete("/{fixtureItemID}", controllers.DeleteFixtureItem(fixtureService, logg))
		})

		r.Route("/contractors", func(r chi.Router) {
			r.Get("/", controllers.ListContractors(contractorService, logg))
			r.Post("/", controllers.CreateContractor(contractorService, logg))
			r.Get("/{contractorID}", controllers.GetContractor(contractorService, logg))
			r.Put("/{contractorID}", controllers.UpdateContractor(contractorService, logg))
			r.Delete("/{contractorID}", controllers.DeleteContractor(contractorService, logg))
			r.Get("/{contractorID}/jobs", controllers.ListContractorJobs(jobService, logg))
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", controllers.ListJobs(jobService, logg))
			r.Post("/", controllers.CreateJob(jobService, logg))
			r.Get("/{jobID}", controllers.GetJob(jobService, logg))
			r.Put("/{jobID}", controllers.UpdateJob(jobService, logg))
			r.Delete("/{jobID}", controllers.DeleteJob(jobService, logg))
		})
	})

	return r
}
