package usecase

import (
	"context"
	"time"

	"github.com/allisson/mediport/internal/metrics"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	start := time.Now()
	output, err := s.next.Login(ctx, input)
	s.record(ctx, "login", start, err)
	return output, err
}

func (s *sessionUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	plainToken string,
) (*sessionDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Authenticate(ctx, plainToken)
	s.record(ctx, "authenticate", start, err)
	return session, err
}

func (s *sessionUseCaseWithMetrics) Logout(ctx context.Context, session *sessionDomain.Session) error {
	start := time.Now()
	err := s.next.Logout(ctx, session)
	s.record(ctx, "logout", start, err)
	return err
}

func (s *sessionUseCaseWithMetrics) CleanExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := s.next.CleanExpired(ctx, days, dryRun)
	s.record(ctx, "clean_expired", start, err)
	return count, err
}

func (s *sessionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	s.metrics.RecordOperation(ctx, "session", operation, status)
	s.metrics.RecordDuration(ctx, "session", operation, time.Since(start), status)
}
