package app

import (
	"context"

	"intakedesk/internal/common"
	"intakedesk/internal/domain/application"
)

type ApplicationService struct {
	repo application.Repository
}

func NewApplicationService(repo application.Repository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// Create validates before touching the store. Nothing is written when any
// field fails.
func (s *ApplicationService) Create(ctx context.Context, input application.CreateInput) (*application.Application, error) {
	if fields := input.Validate(); len(fields) > 0 {
		return nil, common.NewValidationError("invalid application", fields)
	}
	return s.repo.Create(ctx, input)
}

// Get returns (nil, nil) when no record exists for id.
func (s *ApplicationService) Get(ctx context.Context, id int64) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	return s.repo.List(ctx, filter.Normalize())
}

// UpdateStatus returns a NotFound error when no record exists for id.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status string) (*application.Application, error) {
	parsed, ok := application.ParseStatus(status)
	if !ok {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, reviewed, approved, or rejected"})
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}
