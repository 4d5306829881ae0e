package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	"github.com/allisson/mediport/internal/audit/usecase"
	"github.com/allisson/mediport/internal/audit/usecase/mocks"
	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	metricsMocks "github.com/allisson/mediport/internal/metrics/mocks"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
)

func TestAuditLogUseCase_Record(t *testing.T) {
	repo := &mocks.MockAuditLogRepository{}
	uc := usecase.NewAuditLogUseCase(repo)
	ctx := httputil.WithRequestID(context.Background(), "req-42")

	auditLog := auditDomain.NewDecision(
		rbacDomain.Require(rbacDomain.AssignBeds),
		rbacDomain.RoleDoctor,
		"PUT",
		"/v1/patients/7/bed",
		false,
	)

	repo.On("Create", ctx, mock.MatchedBy(func(a *auditDomain.AuditLog) bool {
		return a.RequestID == "req-42" && !a.Allowed && a.CreatedAt.Location() == time.UTC
	})).Return(nil).Once()

	require.NoError(t, uc.Record(ctx, auditLog))
	assert.NotEqual(t, [16]byte{}, [16]byte(auditLog.ID))
	repo.AssertExpectations(t)
}

func TestAuditLogUseCase_Record_KeepsExplicitRequestID(t *testing.T) {
	repo := &mocks.MockAuditLogRepository{}
	uc := usecase.NewAuditLogUseCase(repo)
	ctx := httputil.WithRequestID(context.Background(), "from-context")

	repo.On("Create", ctx, mock.MatchedBy(func(a *auditDomain.AuditLog) bool {
		return a.RequestID == "explicit" && a.Capabilities != nil
	})).Return(nil).Once()

	require.NoError(t, uc.Record(ctx, &auditDomain.AuditLog{RequestID: "explicit"}))
	repo.AssertExpectations(t)
}

func TestAuditLogUseCase_Record_Error(t *testing.T) {
	repo := &mocks.MockAuditLogRepository{}
	uc := usecase.NewAuditLogUseCase(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	err := uc.Record(context.Background(), &auditDomain.AuditLog{})
	assert.ErrorContains(t, err, "failed to record audit log")
}

func TestAuditLogUseCase_List(t *testing.T) {
	repo := &mocks.MockAuditLogRepository{}
	uc := usecase.NewAuditLogUseCase(repo)
	ctx := context.Background()
	from := time.Now().UTC().Add(-time.Hour)
	expected := []*auditDomain.AuditLog{{Username: "ana"}}

	repo.On("List", ctx, 0, 50, &from, (*time.Time)(nil)).Return(expected, nil).Once()

	auditLogs, err := uc.List(ctx, 0, 50, &from, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, auditLogs)

	repo.On("List", ctx, 50, 50, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, errors.New("timeout")).Once()
	_, err = uc.List(ctx, 50, 50, nil, nil)
	assert.ErrorContains(t, err, "failed to list audit logs")
	repo.AssertExpectations(t)
}

func TestAuditLogUseCase_DeleteOlderThan(t *testing.T) {
	repo := &mocks.MockAuditLogRepository{}
	uc := usecase.NewAuditLogUseCase(repo)
	ctx := context.Background()

	repo.On("DeleteOlderThan", ctx, mock.MatchedBy(func(olderThan time.Time) bool {
		expected := time.Now().UTC().AddDate(0, 0, -30)
		return olderThan.Sub(expected).Abs() < time.Minute
	}), true).Return(int64(7), nil).Once()

	count, err := uc.DeleteOlderThan(ctx, 30, true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	_, err = uc.DeleteOlderThan(ctx, -1, false)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	repo.AssertExpectations(t)
}

func TestAuditLogUseCaseWithMetrics(t *testing.T) {
	next := &mocks.MockAuditLogUseCase{}
	businessMetrics := &metricsMocks.MockBusinessMetrics{}
	uc := usecase.NewAuditLogUseCaseWithMetrics(next, businessMetrics)
	ctx := context.Background()

	t.Run("Record success", func(t *testing.T) {
		auditLog := &auditDomain.AuditLog{}
		next.On("Record", ctx, auditLog).Return(nil).Once()
		businessMetrics.ExpectOperation("audit", "audit_log_record", "success")

		assert.NoError(t, uc.Record(ctx, auditLog))
	})

	t.Run("List error", func(t *testing.T) {
		next.On("List", ctx, 0, 10, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, errors.New("boom")).Once()
		businessMetrics.ExpectOperation("audit", "audit_log_list", "error")

		_, err := uc.List(ctx, 0, 10, nil, nil)
		assert.Error(t, err)
	})

	t.Run("DeleteOlderThan success", func(t *testing.T) {
		next.On("DeleteOlderThan", ctx, 90, false).Return(int64(3), nil).Once()
		businessMetrics.ExpectOperation("audit", "audit_log_delete", "success")

		count, err := uc.DeleteOlderThan(ctx, 90, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	next.AssertExpectations(t)
	businessMetrics.AssertExpectations(t)
}
