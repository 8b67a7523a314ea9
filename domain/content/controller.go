package content

import (
	"github.com/intellect-edu/edusite-api/config"
	"github.com/intellect-edu/edusite-api/config/router"
	"github.com/intellect-edu/edusite-api/internal/log"
	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
)

func NewContentController(logger *log.Logger, cache config.Cache, cmsConfig *config.CMSConfig) *router.RESTController {
	return router.NewVersionedRESTController(
		"ContentController",
		"v1",
		"/content",
		func(rs *router.RouterService, c *router.RESTController) {
			var client ContentClient
			if cmsConfig.IsConfigured() {
				client = NewContentClient(cmsConfig.BaseURL, cmsConfig.APIToken)
			} else {
				logger.Warn("CMS is not configured; content endpoints will report unavailability")
			}

			service := NewContentService(logger, client, cache, cmsConfig.CacheTTL)

			rs.AddGetHandler(c, nil, "/:type", listContentHandler(service))
			rs.AddGetHandler(c, nil, "/:type/:slug", getContentHandler(service))
		},
	)
}

func listContentHandler(service ContentService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		contentType := ctx.Param("type")
		if contentType == "" {
			return router.BadRequestResult("Content type is required", nil)
		}

		response, err := service.List(ctx.Request.Context(), contentType)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Content retrieved successfully")
	}
}

func getContentHandler(service ContentService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		contentType := ctx.Param("type")
		slug := ctx.Param("slug")
		if contentType == "" || slug == "" {
			return router.BadRequestResult("Content type and slug are required", nil)
		}

		response, err := service.Get(ctx.Request.Context(), contentType, slug)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Content retrieved successfully")
	}
}
