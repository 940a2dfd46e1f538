package service

import (
	"context"
	"time"

	"github.com/jglopez/tappedout-api/internal/domain"
)

// Clock supplies the current instant to every time-sensitive rule. Production
// wiring passes time.Now; tests pass a fixed instant.
type Clock func() time.Time

// Notifier delivers best-effort notifications. Failures are logged by the
// caller and never abort the operation that triggered them.
type Notifier interface {
	NotifyInscriptionConfirmed(ctx context.Context, competitor domain.User, event domain.Event, category domain.Category) error
	NotifyInscriptionCancelled(ctx context.Context, competitor domain.User, event domain.Event) error
	NotifyResultPublished(ctx context.Context, competitor domain.User, event domain.Event, result domain.Result) error
}
