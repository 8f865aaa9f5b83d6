package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@every 10m", func() {
		a.RefreshReferenceCache()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}
}

// RefreshReferenceCache pulls the slow-changing reference lists so their
// cached copies stay warm. Does nothing while unauthenticated.
func (a *Application) RefreshReferenceCache() {
	if _, ok := a.sessions.Current(); !ok {
		return
	}

	if _, err := a.Branches(); err != nil {
		zap.L().Warn("branch cache refresh failed", zap.Error(err))
	}
	if _, err := a.ProductTypes(); err != nil {
		zap.L().Warn("product type cache refresh failed", zap.Error(err))
	}
}
