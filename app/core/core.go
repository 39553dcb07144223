package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/moodnote-ai/moodnote/app/core/srv"
	"github.com/moodnote-ai/moodnote/app/store"
	"github.com/moodnote-ai/moodnote/app/store/memstore"
	"github.com/moodnote-ai/moodnote/app/store/sqlstore"
	"github.com/moodnote-ai/moodnote/pkg/sentiment"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores   store.Store
	analyzer *sentiment.Analyzer

	httpClient *http.Client
	httpEngine *gin.Engine

	metrics *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(1)

	core := &Core{
		cfg: cfg,
		// bounds every AI call, chat completions are slow
		httpClient: &http.Client{Timeout: time.Second * 30},
		metrics:    NewMetrics("moodnote", "core"),
		httpEngine: gin.New(),
	}

	setupStore(core)

	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI, core.httpClient))
	core.analyzer = sentiment.NewAnalyzer(core.srv.AI())
	core.analyzer.SetFallbackObserver(func() {
		core.metrics.AIFallbackInc("sentiment")
	})

	return core
}

func setupStore(core *Core) {
	driver := core.cfg.Store.Driver
	if driver == "" {
		driver = "memory"
		if core.cfg.Postgres.DSN != "" {
			driver = "postgres"
		}
	}

	switch driver {
	case "postgres":
		provider := sqlstore.MustSetup(core.cfg.Postgres)
		if err := provider.Install(); err != nil {
			panic(err)
		}
		core.stores = provider
	case "memory":
		core.stores = memstore.MustSetup()
	default:
		panic("unknown store driver: " + driver)
	}
	slog.Info("store ready", slog.String("driver", driver))
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() store.Store {
	return s.stores
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

// Analyzer is the lexicon scorer, wired with the AI enhancer when one is
// configured.
func (s *Core) Analyzer() *sentiment.Analyzer {
	return s.analyzer
}
