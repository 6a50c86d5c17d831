package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitplan/internal/config"
	"github.com/2beens/fitplan/internal/fitness"
	"github.com/2beens/fitplan/internal/middleware"
	"github.com/2beens/fitplan/internal/plans"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
)

const maxRequestBodyBytes = 64 << 10

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config    *config.Config
	catalog   *plans.Catalog
	planCache *fitness.PlanCache

	// nil when redis is not configured or not reachable
	redisClient *redis.Client

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
	OtelServiceName         string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	catalog, err := plans.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load plans catalog: %w", err)
	}

	planCache := fitness.NewPlanCache(
		params.Config.PlanCacheSizeMB,
		time.Duration(params.Config.PlanCacheTTLSeconds)*time.Second,
	)

	promRegistry := metrics.SetupPrometheus(
		params.VersionInfo,
		metrics.NewEntriesGauge("fitplan", "main", "plan_cache_entries", planCache.Entries),
	)
	metricsManager := metrics.NewManager("fitplan", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if params.Config.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if err := pingRedis(ctx, rdb); err != nil {
			log.Errorf("--> %s; /bmi will not be rate limited", err)
			if cErr := rdb.Close(); cErr != nil {
				log.Errorf("close redis client: %s", cErr)
			}
			rdb = nil
		}
	} else {
		log.Debugln("redis not configured, /bmi will not be rate limited")
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, params.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		catalog:     catalog,
		planCache:   planCache,
		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func pingRedis(ctx context.Context, rdb *redis.Client) error {
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Debugf("redis ping: %s", pong)
	return nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()

	var rateLimiter middleware.RequestRateLimiter
	if s.redisClient != nil {
		rateLimiter = redis_rate.NewLimiter(s.redisClient)
	}

	fitnessHandler := fitness.NewHandler(s.catalog, s.planCache, s.metricsManager, s.versionInfo)
	fitnessHandler.SetupRoutes(r, rateLimiter, s.config.BmiRateLimitPerMin)

	chain := []mux.MiddlewareFunc{
		otelmux.Middleware("fitplan-router"),
		middleware.LogRequest(),
		middleware.PanicRecovery(s.metricsManager),
		middleware.RequestMetrics(s.metricsManager),
		middleware.Cors(s.config.CorsAllowedOrigins),
		middleware.LimitRequestBody(maxRequestBodyBytes),
	}
	r.Use(chain...)

	// mux runs r.Use middleware only for matched routes
	r.NotFoundHandler = withMiddleware(http.HandlerFunc(http.NotFound), chain)
	r.MethodNotAllowedHandler = withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}), chain)

	return r
}

func withMiddleware(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "fitplan-server"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
