package application

import (
	"context"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

// HealthService reports the portal's runtime status for the health endpoint.
// It depends only on port interfaces, the quote rotator and the shell.
type HealthService struct {
	journal driven.AttemptLog
	rotator *QuoteRotator
	shell   *Shell
}

// NewHealthService creates a new HealthService. journal may be nil when the
// attempt journal is disabled.
func NewHealthService(journal driven.AttemptLog, rotator *QuoteRotator, shell *Shell) *HealthService {
	return &HealthService{
		journal: journal,
		rotator: rotator,
		shell:   shell,
	}
}

// Check assembles the current health. A journal that cannot be read marks the
// portal degraded; the error is returned alongside the summary.
func (s *HealthService) Check(ctx context.Context) (model.Health, error) {
	health := model.Health{
		Status:         model.HealthStatusOK,
		JournalEnabled: s.journal != nil,
	}
	if s.rotator != nil {
		health.QuoteCount = s.rotator.Len()
	}
	if s.shell != nil {
		health.ActiveVisitors = s.shell.Count()
	}

	if s.journal != nil {
		if _, err := s.journal.Recent(ctx, 1); err != nil {
			health.Status = model.HealthStatusDegraded
			return health, err
		}
	}

	return health, nil
}
