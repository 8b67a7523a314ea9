package registration

import (
	"context"

	"github.com/intellect-edu/edusite-api/internal/models"
	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	// CreateSubmission persists the audit record of a validated submission.
	CreateSubmission(ctx context.Context, submission *models.RegistrationSubmission) (*models.RegistrationSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (sr *submissionRepository) CreateSubmission(ctx context.Context, submission *models.RegistrationSubmission) (*models.RegistrationSubmission, error) {
	if submission == nil {
		return nil, apperrors.NewInvalidRequestError("submission cannot be nil", nil)
	}

	if err := sr.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to record registration submission", err)
	}

	return submission, nil
}
