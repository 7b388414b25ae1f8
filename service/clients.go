package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"payments-review/logging"
	"payments-review/models"
	"payments-review/monitoring"
	"payments-review/review"
)

// ProviderSource lists the banking apps that can receive a payment request
type ProviderSource interface {
	Providers(ctx context.Context) ([]review.PaymentProvider, error)
}

// PaymentSink creates a payment request for an assembled payment and
// returns its identifier
type PaymentSink interface {
	CreatePaymentRequest(ctx context.Context, record review.PaymentRecord) (string, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

func recordCall(ctx context.Context, call, status string, start time.Time) {
	monitoring.ExternalCallDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(
			attribute.String("call", call),
			attribute.String("status", status),
		),
	)
}

// HTTPProviderSource fetches payment providers from a remote endpoint
type HTTPProviderSource struct {
	baseURL  string
	client   *http.Client
	validate *validator.Validate
}

// NewHTTPProviderSource creates a provider source for baseURL
func NewHTTPProviderSource(baseURL string, timeout time.Duration) *HTTPProviderSource {
	return &HTTPProviderSource{
		baseURL:  baseURL,
		client:   newHTTPClient(timeout),
		validate: validator.New(),
	}
}

// Providers returns the usable providers. Entries lacking an id or an app
// scheme are skipped; an empty list is not an error.
func (s *HTTPProviderSource) Providers(ctx context.Context) ([]review.PaymentProvider, error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("external.service", "payment-providers"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/providers", nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		recordCall(ctx, "providers", "error", start)
		return nil, fmt.Errorf("failed to fetch payment providers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		recordCall(ctx, "providers", "failed", start)
		return nil, fmt.Errorf("payment provider source returned status %d", resp.StatusCode)
	}

	var body models.ProvidersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		recordCall(ctx, "providers", "failed", start)
		return nil, fmt.Errorf("failed to decode payment providers: %w", err)
	}
	recordCall(ctx, "providers", "success", start)

	providers := make([]review.PaymentProvider, 0, len(body.Providers))
	for _, p := range body.Providers {
		if err := s.validate.Struct(p); err != nil {
			logging.WithTraceContext(span).Warn("Skipping unusable payment provider",
				zap.String("provider_id", p.ID),
				zap.Error(err),
			)
			continue
		}
		providers = append(providers, p)
	}
	span.SetAttributes(attribute.Int("payment.providers", len(providers)))

	return providers, nil
}

// HTTPPaymentSink posts payment records to the payment request endpoint
type HTTPPaymentSink struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPaymentSink creates a payment sink for baseURL
func NewHTTPPaymentSink(baseURL string, timeout time.Duration) *HTTPPaymentSink {
	return &HTTPPaymentSink{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// CreatePaymentRequest submits the record and returns the payment request id
func (s *HTTPPaymentSink) CreatePaymentRequest(ctx context.Context, record review.PaymentRecord) (string, error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("external.service", "payment-requests"),
		attribute.String("payment.provider_id", record.ProviderID),
	)

	jsonData, err := json.Marshal(record)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/payment-requests", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		recordCall(ctx, "payment_request", "error", start)
		span.SetAttributes(attribute.String("external.status", "error"))
		return "", fmt.Errorf("failed to call payment request endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		recordCall(ctx, "payment_request", "failed", start)
		span.SetAttributes(
			attribute.Int("external.status_code", resp.StatusCode),
			attribute.String("external.status", "failed"),
		)
		return "", fmt.Errorf("payment request endpoint returned status %d", resp.StatusCode)
	}

	var body models.PaymentRequestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		recordCall(ctx, "payment_request", "failed", start)
		return "", fmt.Errorf("failed to decode payment request response: %w", err)
	}
	if body.ID == "" {
		recordCall(ctx, "payment_request", "failed", start)
		return "", errors.New("payment request endpoint returned no id")
	}

	recordCall(ctx, "payment_request", "success", start)
	span.SetAttributes(
		attribute.String("external.payment_request_id", body.ID),
		attribute.String("external.status", "success"),
	)

	return body.ID, nil
}
