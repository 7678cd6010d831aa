package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Create outcomes.
const (
	OutcomeCreated  = "created"
	OutcomeExisting = "existing"
	OutcomeError    = "error"
)

var (
	resourceCreateCounter metric.Int64Counter
)

// InitResourceMetrics registers the create-or-get counter on the global meter.
// Call it after SetupMetrics so the counter binds to the real provider.
func InitResourceMetrics() error {
	meter := otel.Meter("serviceflow.resource")

	var err error
	resourceCreateCounter, err = meter.Int64Counter(
		"serviceflow.resource.create",
		metric.WithDescription("Create-or-get calls by entity and outcome"),
		metric.WithUnit("{call}"),
	)
	return err
}

// RecordCreate counts one create-or-get call. created is ignored when err is non-nil.
func RecordCreate(ctx context.Context, entity string, created bool, err error) {
	if resourceCreateCounter == nil {
		return
	}
	outcome := OutcomeExisting
	switch {
	case err != nil:
		outcome = OutcomeError
	case created:
		outcome = OutcomeCreated
	}
	resourceCreateCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("outcome", outcome),
	))
}
