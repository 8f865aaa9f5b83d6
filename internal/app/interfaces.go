package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/metforge/steelctl/config"
	"github.com/metforge/steelctl/internal/cart"
	"github.com/metforge/steelctl/internal/client"
	"github.com/metforge/steelctl/internal/session"
	"github.com/metforge/steelctl/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides durable client state access
type StoreProvider interface {
	Store() *store.Store
}

// SessionProvider provides the authenticated session
type SessionProvider interface {
	Sessions() *session.Manager
}

// APIProvider provides the backend REST client
type APIProvider interface {
	API() *client.Client
}

// CartProvider provides the pending order cart
type CartProvider interface {
	Cart() *cart.Cart
}

// BusProvider provides the application event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Commands should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	SessionProvider
	APIProvider
	CartProvider
	BusProvider
	SchedulerProvider

	// StartBackgroundJobs launches the poller and scheduled refreshes
	StartBackgroundJobs()
	// Release closes the state database and flushes logs
	Release()
}
