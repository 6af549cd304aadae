package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/mkarvo/fitsoul/internal/auth"
	"github.com/mkarvo/fitsoul/internal/chat"
	"github.com/mkarvo/fitsoul/internal/docstore"
	"github.com/mkarvo/fitsoul/internal/envstruct"
	"github.com/mkarvo/fitsoul/internal/logging"
	"github.com/mkarvo/fitsoul/internal/plan"
	"github.com/mkarvo/fitsoul/internal/pprofserver"
	"github.com/mkarvo/fitsoul/internal/profile"
	"github.com/mkarvo/fitsoul/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	templateFS     fs.FS
	db             *sqlite.Database
	authService    *auth.Service
	profileService *profile.Service
	planService    *plan.Service
	chatClient     *chat.Client
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITSOUL_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITSOUL_SQLITE_URL" envDefault:"./fitsoul.sqlite3"`
	// OpenAIAPIKey authenticates the coach chat against the OpenAI API. When empty the chat
	// responds with a canned fallback message.
	OpenAIAPIKey string `env:"FITSOUL_OPENAI_API_KEY" envDefault:""`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"FITSOUL_PPROF_ADDR" envDefault:""`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"FITSOUL_TEMPLATE_PATH" envDefault:""`
}

// chatTimeout bounds the OpenAI completion call. It is far beyond the normal
// request timeout since chat responses routinely take several seconds.
const chatTimeout = 25 * time.Second

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return fmt.Errorf("populate config: %w", err)
	}

	if cfg.PProfAddr != "" {
		pprofserver.Launch(ctx, cfg.PProfAddr, logger)
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return fmt.Errorf("resolve template path: %w", err)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return fmt.Errorf("open db %s: %w", cfg.SqliteURL, err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db)
	store := docstore.NewSQLiteStore(db)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		templateFS:     os.DirFS(htmlTemplatePath),
		db:             db,
		authService:    auth.NewService(db, logger),
		profileService: profile.NewService(store, logger),
		planService:    plan.NewService(store, logger),
		chatClient:     chat.NewClient(cfg.OpenAIAPIKey, chatTimeout, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", slog.Any("error", err))
		os.Exit(1)
	}
}
