package monitoring

import (
	"context"

	"github.com/intellect-edu/edusite-api/config/router"
	"github.com/intellect-edu/edusite-api/internal/log"
	"gorm.io/gorm"
)

// MonitoringCache defines the cache interface for the monitoring controller factory.
type MonitoringCache interface {
	Ping(ctx context.Context) error
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	db          *gorm.DB
	logger      *log.Logger
	cache       MonitoringCache
	mailerReady bool
}

func NewMonitoringControllerFactory(db *gorm.DB, logger *log.Logger, cache MonitoringCache, mailerReady bool) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		db:          db,
		logger:      logger,
		cache:       cache,
		mailerReady: mailerReady,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.db, f.logger, f.cache, f.mailerReady)
}
