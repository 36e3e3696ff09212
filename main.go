package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"feed-catalog/internal/auth"
	"feed-catalog/internal/catalog"
	"feed-catalog/internal/config"
	"feed-catalog/internal/db"
	"feed-catalog/internal/featureflags"
	mw "feed-catalog/internal/http/middleware"
	"feed-catalog/internal/http/respond"
	"feed-catalog/internal/inquiry"
	"feed-catalog/internal/logger"
	"feed-catalog/internal/metrics"
	"feed-catalog/internal/notify"
	"feed-catalog/internal/quote"
	"feed-catalog/internal/tracing"
)

func main() {
	// 1) Config + logger
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config load failed: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.App.LogLevel, logger.WithFormat(cfg.App.LogFormat), logger.WithService(cfg.App.Name))
	logger.Infof("log level set to %s", logger.GetLevel())

	// 2) Feature flags init (non-fatal)
	flagCtx, cancelFlags := context.WithTimeout(context.Background(), cfg.FeatureFlags.SetupTimeout)
	if err := featureflags.Init(flagCtx, cfg.FeatureFlags.RoxAPIKey); err != nil {
		logger.Warnf("feature flags init warning: %v", err)
	} else {
		logger.Infof("feature flags ready: offline=%v, logLevel=%s", featureflags.Offline(), featureflags.LogLevel())
	}
	cancelFlags()

	// 2a) Watch the log level flag for flips
	go watchLogLevel(cfg.FeatureFlags.PollInterval)

	// 3) Catalog: Postgres when configured, built-in otherwise
	var sqlDB *sql.DB
	if cfg.DB.Enabled() {
		dbCtx, cancel := context.WithTimeout(context.Background(), cfg.DB.LoadTimeout)
		sqlDB, err = db.Open(dbCtx, cfg.DB)
		cancel()
		if err != nil {
			logger.Errorf("database init failed: %v", err)
			os.Exit(1)
		}
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.DB.LoadTimeout)
	products, err := catalog.Load(loadCtx, sqlDB)
	cancelLoad()
	if err != nil {
		logger.Errorf("catalog load failed: %v", err)
		os.Exit(1)
	}
	logger.Infof("catalog loaded with %d products", products.Len())

	// 4) Redis (optional): draft storage + pub/sub notifications
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Errorf("redis url invalid: %v", err)
			os.Exit(1)
		}
		opts.DialTimeout = cfg.Redis.DialTimeout
		opts.ReadTimeout = cfg.Redis.ReadTimeout
		opts.WriteTimeout = cfg.Redis.WriteTimeout
		rdb = redis.NewClient(opts)
	}

	var drafts quote.DraftStore = quote.NewMemoryStore(cfg.Session.DraftTTL)
	if rdb != nil {
		drafts = quote.NewRedisStore(rdb, cfg.Session.DraftTTL)
	}

	// 5) Notifiers: always log, plus kafka/redis when configured
	notifiers := notify.Multi{notify.LogNotifier{}}
	var kafkaNotifier *notify.KafkaNotifier
	if cfg.Kafka.Enabled() {
		kafkaNotifier = notify.NewKafkaNotifier(notify.NewKafkaWriter(cfg.Kafka))
		notifiers = append(notifiers, notify.NewBreaker("kafka", kafkaNotifier))
	}
	if rdb != nil {
		notifiers = append(notifiers, notify.NewBreaker("redis", notify.NewRedisNotifier(rdb, cfg.Notify.RedisChannel)))
	}

	// 6) Tracing (optional)
	var tracerProvider *sdktrace.TracerProvider
	if cfg.Tracing.Enabled() {
		tracerProvider, err = tracing.Init(context.Background(), cfg.Tracing, cfg.App.Name)
		if err != nil {
			logger.Warnf("tracing disabled: %v", err)
		}
	}

	// 7) Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.NewHTTPMetrics(reg)
	inquiryMetrics := metrics.NewInquiryMetrics(reg)

	// 8) Router
	r := mux.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Recoverer)
	r.Use(mw.Offline(featureflags.Offline, "/health", "/ready", "/metrics", "/_flags"))
	r.Use(mw.LogRequests(mw.WithSkips("/health", "/ready", "/metrics")))
	r.Use(mw.Metrics(httpMetrics))

	// 9) Health endpoints
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/ready", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if sqlDB != nil {
			if err := sqlDB.PingContext(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				http.Error(w, "redis not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// 10) Inspect current flag values
	r.HandleFunc("/_flags", func(w http.ResponseWriter, _ *http.Request) {
		respond.OK(w, featureflags.Snapshot())
	}).Methods(http.MethodGet)

	// 11) Catalog, quote drafts and inquiry endpoints
	catalog.NewHandler(products).Register(r)

	tokens := auth.NewTokens(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.DraftTTL)
	sessions := quote.NewSessions(drafts, tokens)
	quote.NewHandler(products, sessions).Register(r)

	ids, err := inquiry.NewIDGenerator()
	if err != nil {
		logger.Errorf("id generator init failed: %v", err)
		os.Exit(1)
	}
	svc := inquiry.NewService(products, notifiers, inquiryMetrics, ids, cfg.Notify.Timeout)
	inquiry.NewHandler(svc, sessions, products).Register(r)

	s := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Infof("%s listening on %s", cfg.App.Name, s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("http server: %v", err)
			os.Exit(1)
		}
	}()

	// 12) Graceful shutdown
	ops := map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
		"feature-flags": func(context.Context) error {
			featureflags.Shutdown()
			return nil
		},
	}
	if kafkaNotifier != nil {
		ops["kafka"] = func(context.Context) error { return kafkaNotifier.Close() }
	}
	if rdb != nil {
		ops["redis"] = func(context.Context) error { return rdb.Close() }
	}
	if sqlDB != nil {
		ops["database"] = func(context.Context) error { return sqlDB.Close() }
	}
	if tracerProvider != nil {
		ops["tracing"] = tracerProvider.Shutdown
	}

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.App.ShutdownTimeout, ops)
	exitCode := <-wait
	logger.Infof("%s exited with code %d", cfg.App.Name, exitCode)
	os.Exit(exitCode)
}

func watchLogLevel(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	prev := featureflags.LogLevel()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		cur := featureflags.LogLevel()
		if cur != prev {
			logger.SetLevel(cur)
			logger.Infof("log level changed to %s", logger.GetLevel())
			prev = cur
		}
	}
}
