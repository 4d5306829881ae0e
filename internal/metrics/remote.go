package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RemoteMetrics records calls made to the remote records API.
type RemoteMetrics interface {
	// RecordRequest records one logical request (retries included) against endpoint.
	// statusCode is 0 when no response was received.
	RecordRequest(ctx context.Context, method, endpoint string, statusCode int, duration time.Duration)
}

type remoteMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
}

// NewRemoteMetrics creates a RemoteMetrics backed by the provided meter provider.
func NewRemoteMetrics(meterProvider metric.MeterProvider, namespace string) (RemoteMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_remote_requests_total", namespace),
		metric.WithDescription("Total number of requests sent to the records API"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote request counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_remote_request_duration_seconds", namespace),
		metric.WithDescription("Duration of records API requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote duration histogram: %w", err)
	}

	return &remoteMetrics{requestCounter: requestCounter, durationHisto: durationHisto}, nil
}

func (r *remoteMetrics) RecordRequest(
	ctx context.Context,
	method, endpoint string,
	statusCode int,
	duration time.Duration,
) {
	status := "no_response"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("endpoint", endpoint),
		attribute.String("status_code", status),
	)
	r.requestCounter.Add(ctx, 1, attrs)
	r.durationHisto.Record(ctx, duration.Seconds(), attrs)
}

// NoOpRemoteMetrics is used when metrics are disabled.
type NoOpRemoteMetrics struct{}

// NewNoOpRemoteMetrics creates a no-op RemoteMetrics implementation.
func NewNoOpRemoteMetrics() RemoteMetrics {
	return &NoOpRemoteMetrics{}
}

// RecordRequest does nothing.
func (n *NoOpRemoteMetrics) RecordRequest(
	ctx context.Context,
	method, endpoint string,
	statusCode int,
	duration time.Duration,
) {
}
