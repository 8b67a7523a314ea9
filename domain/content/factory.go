package content

import (
	"github.com/intellect-edu/edusite-api/config"
	"github.com/intellect-edu/edusite-api/config/router"
	"github.com/intellect-edu/edusite-api/internal/log"
)

type ContentServiceFactory interface {
	CreateService() ContentService
	CreateController() *router.RESTController
}

type DefaultContentServiceFactory struct {
	logger    *log.Logger
	cache     config.Cache
	cmsConfig *config.CMSConfig
}

func NewContentServiceFactory(logger *log.Logger, cache config.Cache, cmsConfig *config.CMSConfig) ContentServiceFactory {
	return &DefaultContentServiceFactory{
		logger:    logger,
		cache:     cache,
		cmsConfig: cmsConfig,
	}
}

func (f *DefaultContentServiceFactory) CreateService() ContentService {
	var client ContentClient
	if f.cmsConfig.IsConfigured() {
		client = NewContentClient(f.cmsConfig.BaseURL, f.cmsConfig.APIToken)
	}
	return NewContentService(f.logger, client, f.cache, f.cmsConfig.CacheTTL)
}

func (f *DefaultContentServiceFactory) CreateController() *router.RESTController {
	return NewContentController(f.logger, f.cache, f.cmsConfig)
}
