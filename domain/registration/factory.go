package registration

import (
	"github.com/intellect-edu/edusite-api/config/router"
	"github.com/intellect-edu/edusite-api/internal/log"
	"github.com/intellect-edu/edusite-api/pkg/mailer"
	"gorm.io/gorm"
)

type RegistrationServiceFactory interface {
	CreateService() RegistrationService
	CreateController() *router.RESTController
}

type DefaultRegistrationServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	sender mailer.Sender
}

func NewRegistrationServiceFactory(db *gorm.DB, logger *log.Logger, sender mailer.Sender) RegistrationServiceFactory {
	return &DefaultRegistrationServiceFactory{
		db:     db,
		logger: logger,
		sender: sender,
	}
}

func (f *DefaultRegistrationServiceFactory) CreateService() RegistrationService {
	repository := NewSubmissionRepository(f.db)
	dispatcher := NewEmailDispatcher(f.sender)
	return NewRegistrationService(f.logger, newIntakeLimiter(), dispatcher, repository)
}

func (f *DefaultRegistrationServiceFactory) CreateController() *router.RESTController {
	return NewRegistrationController(f.db, f.logger, f.sender)
}
