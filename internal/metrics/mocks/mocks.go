// Package mocks provides testify mocks for the metrics interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// ExpectOperation registers the counter and histogram calls of one decorated operation.
func (m *MockBusinessMetrics) ExpectOperation(domain, operation, status string) {
	m.On("RecordOperation", mock.Anything, domain, operation, status).Return().Once()
	m.On("RecordDuration", mock.Anything, domain, operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

// MockRemoteMetrics is a mock of metrics.RemoteMetrics.
type MockRemoteMetrics struct {
	mock.Mock
}

func (m *MockRemoteMetrics) RecordRequest(
	ctx context.Context,
	method, endpoint string,
	statusCode int,
	duration time.Duration,
) {
	m.Called(ctx, method, endpoint, statusCode, duration)
}
