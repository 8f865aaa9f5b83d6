package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/metforge/steelctl/config"
	"github.com/metforge/steelctl/internal/cart"
	"github.com/metforge/steelctl/internal/client"
	"github.com/metforge/steelctl/internal/notify"
	"github.com/metforge/steelctl/internal/session"
	"github.com/metforge/steelctl/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	bus       EventBus.Bus
	stateDB   *store.Store
	sessions  *session.Manager
	api       *client.Client
	basket    *cart.Cart
	poller    *notify.Poller
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ SessionProvider   = (*Application)(nil)
	_ APIProvider       = (*Application)(nil)
	_ CartProvider      = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Store {
	return a.stateDB
}

func (a *Application) Sessions() *session.Manager {
	return a.sessions
}

func (a *Application) API() *client.Client {
	return a.api
}

func (a *Application) Cart() *cart.Cart {
	return a.basket
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	a.bus = EventBus.New()

	a.stateDB, err = store.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	zap.S().Debugf("state database opened at %s", cfg.Storage.Path)

	a.sessions = session.NewManager(a.stateDB, a.bus, cfg.SessionCheckInterval())
	a.api = client.New(cfg.Server.BaseURL, cfg.RequestTimeout(), a.sessions)
	a.api.OnUnauthorized = func() {
		zap.L().Warn("server rejected the token, clearing session")
		if err := a.sessions.Logout(); err != nil {
			zap.L().Error("failed to clear session", zap.Error(err))
		}
	}

	a.basket, err = cart.New(a.stateDB)
	if err != nil {
		return err
	}

	a.poller = notify.NewPoller(a.api, a.bus, cfg.NotifyPollInterval())

	// pick up the session from the previous run, if still valid
	if s, ok, err := a.sessions.Restore(); err != nil {
		zap.L().Error("session restore failed", zap.Error(err))
	} else if ok {
		zap.S().Debugf("session restored for %s", s.Username)
	}

	a.initJob()
	return nil
}

// StartBackgroundJobs launches the notification poller and the scheduled
// cache refreshes. One-shot commands skip this; it is for the watch mode.
func (a *Application) StartBackgroundJobs() {
	a.sched.Start()
	a.poller.Start()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.poller != nil {
		a.poller.Stop()
	}
	if a.stateDB != nil {
		_ = a.stateDB.Close()
	}
	_ = zap.L().Sync()
}
