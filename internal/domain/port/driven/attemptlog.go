package driven

import (
	"context"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

// AttemptLog defines the driven port for the login attempt journal, the
// diagnostic sink that resolved submissions are reported to.
type AttemptLog interface {
	// Record appends a resolved attempt. Records never carry the secret.
	Record(ctx context.Context, rec model.AttemptRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]model.AttemptRecord, error)

	// RecentFor returns up to limit records whose sanitized identifier
	// equals identifier, newest first.
	RecentFor(ctx context.Context, identifier string, limit int) ([]model.AttemptRecord, error)
}
