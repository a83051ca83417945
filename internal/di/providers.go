package di

import (
	"context"
	"fmt"

	domrepo "BotDash/internal/domain/repository"
	"BotDash/internal/handler/api"
	"BotDash/internal/handler/web"
	internalrepo "BotDash/internal/repository"
	"BotDash/internal/usecase"
	"BotDash/pkg/cache"
	pkgch "BotDash/pkg/clickhouse"
	"BotDash/pkg/config"
	xhttp "BotDash/pkg/http"
	applogger "BotDash/pkg/logger"
	"BotDash/pkg/metrics"
	"BotDash/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the Prometheus registry shared by store and HTTP metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) domrepo.Metrics {
	return metrics.New(reg)
}

// ProvideSnapshotStore opens the configured backend and wraps it with metrics.
// The cleanup closes the store when a later provider fails.
func ProvideSnapshotStore(cfg *config.Config, m domrepo.Metrics, l *applogger.Logger) (domrepo.SnapshotStore, func(), error) {
	store, err := openSnapshotStore(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}

	l.Info("snapshot store ready",
		applogger.String("backend", cfg.Store.Backend),
		applogger.String("document_id", cfg.Store.DocumentID),
	)
	s, cleanup := instrumentStore(store, m, cfg.Store.Backend, l)
	return s, cleanup, nil
}

func instrumentStore(store domrepo.SnapshotStore, m domrepo.Metrics, backend string, l *applogger.Logger) (domrepo.SnapshotStore, func()) {
	s := internalrepo.NewInstrumentedStore(store, m, backend)
	cleanup := func() {
		if err := s.Close(); err != nil {
			l.Warn("store close error", applogger.Error(err))
		}
	}
	return s, cleanup
}

func openSnapshotStore(ctx context.Context, cfg *config.Config) (domrepo.SnapshotStore, error) {
	docID := cfg.Store.DocumentID

	switch cfg.Store.Backend {
	case config.BackendFirestore:
		client, err := internalrepo.NewFirestoreClient(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.ProjectID)
		if err != nil {
			return nil, err
		}
		return internalrepo.NewFirestoreSnapshotStore(client, docID), nil

	case config.BackendMongo:
		client, err := internalrepo.NewMongoClient(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		return internalrepo.NewMongoSnapshotStore(client, cfg.Mongo.Database, docID), nil

	case config.BackendRedis:
		c, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Redis.Host, cfg.Redis.Port),
			cache.WithRedisAuth(cfg.Redis.Password, cfg.Redis.DB),
			cache.WithRedisPool(cfg.Redis.PoolSize, cfg.Redis.MinIdleConns, cfg.Redis.PoolTimeout),
			cache.WithRedisTimeouts(cfg.Redis.DialTimeout, cfg.Redis.ReadTimeout),
			cache.WithRedisPrefix(cfg.Redis.Prefix),
		)
		if err != nil {
			return nil, err
		}
		return internalrepo.NewRedisSnapshotStore(c, docID), nil

	case config.BackendClickHouse:
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithMaxConnections(10, 5),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
			pkgch.WithReadonly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}
		return internalrepo.NewCHSnapshotStore(client, cfg.ClickHouse.Database+"."+cfg.ClickHouse.Table, docID), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// ProvideWebConfigSource reads the client-safe Firebase config file.
func ProvideWebConfigSource(cfg *config.Config) domrepo.WebConfigSource {
	return internalrepo.NewFileWebConfigSource(cfg.Firebase.WebConfigFile)
}

func ProvideSnapshotReader(store domrepo.SnapshotStore) *usecase.SnapshotReader {
	return usecase.NewSnapshotReader(store)
}

// ProvideHandler registers the JSON API and the HTML pages.
func ProvideHandler(l *applogger.Logger, reader *usecase.SnapshotReader, webcfg domrepo.WebConfigSource) xhttp.Handler {
	return xhttp.Handlers{
		api.NewStatusHandler(l, reader, webcfg),
		web.NewPagesHandler(),
	}
}

func ProvideRenderer(cfg *config.Config) (*xhttp.TemplateRenderer, error) {
	return xhttp.NewTemplateRenderer(cfg.Web.TemplateDir)
}

// ProvideHTTPServer creates the echo server from the server, metrics and web sections.
func ProvideHTTPServer(
	cfg *config.Config,
	h xhttp.Handler,
	r *xhttp.TemplateRenderer,
	reg *prometheus.Registry,
	l *applogger.Logger,
) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(h,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetrics(metricsPath, reg),
		xhttp.WithRenderer(r),
		xhttp.WithStatic(cfg.Web.StaticDir),
		xhttp.WithLogger(l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, store domrepo.SnapshotStore) *server.App {
	return server.New(l, srv, store, cfg.Server.ShutdownTimeout)
}
