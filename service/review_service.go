package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"payments-review/logging"
	"payments-review/monitoring"
	"payments-review/review"
)

// ErrSubmissionFailed wraps every failure of the payment sink.
var ErrSubmissionFailed = errors.New("payment request submission failed")

// SubmitResult is the outcome of a submission attempt
type SubmitResult struct {
	Record    review.PaymentRecord
	RequestID string
	Results   []review.ValidationResult
}

// ReviewService validates payment forms and hands completed payments to the
// selected payment provider
type ReviewService struct {
	tracer    trace.Tracer
	providers ProviderSource
	sink      PaymentSink
	notifier  review.Notifier

	mu        sync.RWMutex
	available []review.PaymentProvider
}

// NewReviewService creates a new review service
func NewReviewService(tracer trace.Tracer, providers ProviderSource, sink PaymentSink, notifier review.Notifier) *ReviewService {
	if notifier == nil {
		notifier = review.NotifierFunc(func(review.Event) {})
	}
	return &ReviewService{
		tracer:    tracer,
		providers: providers,
		sink:      sink,
		notifier:  notifier,
	}
}

// LoadProviders refreshes the list of available payment providers. A failing
// source leaves the list empty and is reported like an empty list.
func (s *ReviewService) LoadProviders(ctx context.Context) []review.PaymentProvider {
	ctx, span := s.tracer.Start(ctx, "load_payment_providers")
	defer span.End()

	logger := logging.WithTraceContext(span)

	providers, err := s.providers.Providers(ctx)
	if err != nil {
		logger.Warn("Payment providers unavailable", zap.Error(err))
		providers = nil
	}

	s.mu.Lock()
	s.available = providers
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("payment.providers", len(providers)))
	if len(providers) == 0 {
		logger.Info("No payment provider available")
		s.notifier.Publish(review.Event{Kind: review.EventNoProviders, Err: err})
		return nil
	}

	logger.Info("Payment providers loaded", zap.Int("count", len(providers)))
	s.notifier.Publish(review.Event{Kind: review.EventProvidersLoaded})
	return append([]review.PaymentProvider(nil), providers...)
}

// Providers returns the providers of the last successful load
func (s *ReviewService) Providers() []review.PaymentProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]review.PaymentProvider(nil), s.available...)
}

// Prefill maps document extractions onto the form fields
func (s *ReviewService) Prefill(ctx context.Context, extractions []review.Extraction) []review.FieldValue {
	_, span := s.tracer.Start(ctx, "prefill_fields")
	defer span.End()

	fields := review.PrefillFields(extractions)
	span.SetAttributes(attribute.Int("review.extractions", len(extractions)))
	s.notifier.Publish(review.Event{Kind: review.EventExtractionsFetched})

	return fields
}

// ValidateField validates a field that finished editing and returns the
// text the field should display afterwards.
func (s *ReviewService) ValidateField(ctx context.Context, kind review.FieldKind, raw string) (review.ValidationResult, string) {
	ctx, span := s.tracer.Start(ctx, "validate_field")
	defer span.End()

	form := review.NewForm()
	res := form.EndEdit(kind, raw)
	recordValidation(ctx, res)

	span.SetAttributes(
		attribute.String("review.field", kind.String()),
		attribute.Bool("review.valid", res.Valid),
	)
	return res, form.Value(kind)
}

// Submit validates the form and, when every field is valid, sends the payment
// to the first available provider. An empty provider list is reloaded from
// the source first. Without any provider nothing is sent and
// ErrNoProviderSelected is returned.
func (s *ReviewService) Submit(ctx context.Context, fields []review.FieldValue) (*SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "submit_payment")
	defer span.End()

	logger := logging.WithTraceContext(span)

	form := review.NewForm(fields...)
	providers := s.Providers()
	if len(providers) == 0 && review.ValidateAll(form.Values()) {
		providers = s.LoadProviders(ctx)
	}
	record, results, err := form.Submit(providers)
	for _, r := range results {
		recordValidation(ctx, r)
	}
	result := &SubmitResult{Results: results}

	switch {
	case errors.Is(err, review.ErrFieldsInvalid):
		recordSubmission(ctx, "invalid")
		span.SetAttributes(attribute.String("payment.status", "invalid"))
		return result, err
	case errors.Is(err, review.ErrNoProviderSelected):
		logger.Info("Submission skipped, no payment provider selected")
		recordSubmission(ctx, "skipped")
		span.SetAttributes(attribute.String("payment.status", "skipped"))
		return result, err
	case err != nil:
		return result, err
	}
	result.Record = record

	span.SetAttributes(attribute.String("payment.provider_id", record.ProviderID))
	logger.Info("Submitting payment request",
		zap.String("provider_id", record.ProviderID),
		zap.String("amount", record.Amount),
	)

	requestID, err := s.sink.CreatePaymentRequest(ctx, record)
	if err != nil {
		logger.Error("Payment request failed",
			zap.Error(err),
			zap.String("provider_id", record.ProviderID),
		)
		recordSubmission(ctx, "failed")
		span.SetAttributes(attribute.String("payment.status", "failed"))
		s.notifier.Publish(review.Event{Kind: review.EventSubmissionFailed, Err: err})
		return result, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	result.RequestID = requestID

	recordSubmission(ctx, "success")
	amount := review.Normalize(record.Amount)
	monitoring.PaymentAmount.Record(ctx, amount.Value.InexactFloat64(),
		metric.WithAttributes(attribute.String("currency", amount.Currency)),
	)
	span.SetAttributes(
		attribute.String("payment.request_id", requestID),
		attribute.String("payment.status", "success"),
	)
	s.notifier.Publish(review.Event{Kind: review.EventSubmissionSucceeded, RequestID: requestID})

	return result, nil
}

func recordValidation(ctx context.Context, res review.ValidationResult) {
	outcome := "valid"
	if !res.Valid {
		outcome = res.Error.String()
	}
	monitoring.FieldValidations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("field", res.Kind.String()),
			attribute.String("result", outcome),
		),
	)
}

func recordSubmission(ctx context.Context, status string) {
	monitoring.Submissions.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}
