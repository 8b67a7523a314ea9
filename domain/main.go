package domain

import (
	"github.com/intellect-edu/edusite-api/config"
	"github.com/intellect-edu/edusite-api/domain/content"
	"github.com/intellect-edu/edusite-api/domain/monitoring"
	"github.com/intellect-edu/edusite-api/domain/registration"
	"github.com/intellect-edu/edusite-api/pkg/mailer"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	// A typed nil *SMTPMailer must not leak into the Sender interface: the
	// dispatcher relies on a plain nil to report the missing configuration.
	var sender mailer.Sender
	if appConfig.Mailer != nil {
		sender = appConfig.Mailer
	}

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(
		appConfig.DB, appConfig.Logger, appConfig.Cache, appConfig.Mailer != nil))
	appConfig.RouterService.MountController(registration.NewRegistrationController(
		appConfig.DB, appConfig.Logger, sender))
	appConfig.RouterService.MountController(content.NewContentController(
		appConfig.Logger, appConfig.Cache, config.NewCMSConfig()))
}
