package usecase

import (
	"context"
	"time"

	"github.com/allisson/mediport/internal/metrics"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	userDomain "github.com/allisson/mediport/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) List(
	ctx context.Context,
	principal *sessionDomain.Principal,
	search string,
) ([]*userDomain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, principal, search)
	u.record(ctx, "list", start, err)
	return users, err
}

func (u *userUseCaseWithMetrics) SetStatus(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
	status userDomain.Status,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.SetStatus(ctx, principal, id, status)
	u.record(ctx, "set_status", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) Toggle(
	ctx context.Context,
	principal *sessionDomain.Principal,
	id int64,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Toggle(ctx, principal, id)
	u.record(ctx, "toggle", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}
