package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/careerhub/jobboard-client/internal/boardapi"
	"github.com/careerhub/jobboard-client/internal/config"
	"github.com/careerhub/jobboard-client/internal/core/ports"
	"github.com/careerhub/jobboard-client/internal/core/service"
	"github.com/careerhub/jobboard-client/internal/gateway"
	"github.com/careerhub/jobboard-client/internal/notify"
	"github.com/careerhub/jobboard-client/internal/routing"
	"github.com/careerhub/jobboard-client/internal/session"
	"github.com/careerhub/jobboard-client/pkg/logger"
)

// App wires the SDK together for one CLI invocation. Commands correspond to
// the routes a web client would mount; role-guarded commands run the same
// guard decision procedure before touching the network.
type App struct {
	Config *config.Config
	Log    zerolog.Logger
	Store  *session.Store
	Auth   ports.AuthService
	API    *boardapi.Client
	Notify ports.Notifier
}

func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	notifier := notify.NewConsole(os.Stdout)

	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(storage, log)
	store.Open(ctx)

	gw := gateway.New(gateway.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
	}, store, notifier, log)

	return &App{
		Config: cfg,
		Log:    log,
		Store:  store,
		Auth:   service.NewAuthService(gw, store, notifier, log),
		API:    boardapi.New(gw),
		Notify: notifier,
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (ports.SessionStorage, error) {
	switch cfg.Session.Backend {
	case "file", "":
		path := cfg.Session.File
		if path == "" {
			path = session.DefaultSessionPath()
		}
		return session.NewFileStorage(path), nil
	case "redis":
		client, err := session.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStorage(client, cfg.Redis.Key), nil
	case "memory":
		return session.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// authState snapshots the session for the route guard.
func (a *App) authState() routing.AuthState {
	st := routing.AuthState{Loading: a.Store.Loading()}
	if ident, ok := a.Store.Current(); ok {
		st.Authenticated = true
		st.Role = ident.Role
	}
	return st
}

// requireAccess runs the guard for a command the way a router would for a
// protected view, translating redirects into actionable errors.
func (a *App) requireAccess(policy routing.Policy) error {
	decision := routing.Decide(a.authState(), policy)
	switch decision.Action {
	case routing.ActionAllow:
		return nil
	case routing.ActionDefer:
		return fmt.Errorf("session is still loading, try again")
	default:
		if decision.Target == routing.PathLogin {
			return fmt.Errorf("you must sign in first (run: jobctl login)")
		}
		return fmt.Errorf("your role cannot access this command; your area is %s", decision.Target)
	}
}
