package main

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"payments-review/config"
	"payments-review/handlers"
	"payments-review/logging"
	"payments-review/monitoring"
	"payments-review/review"
	"payments-review/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	if err := logging.InitLogger(cfg.ServiceName, cfg.OTELEndpoint); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logging.Sync()
	defer func() {
		if err := logging.Shutdown(context.Background()); err != nil {
			logging.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()

	// Initialize OpenTelemetry
	tp, tracer, err := monitoring.InitTracer(cfg.ServiceName, cfg.OTELEndpoint)
	if err != nil {
		logging.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logging.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	mp, _, err := monitoring.InitMeter(cfg.ServiceName, cfg.OTELEndpoint)
	if err != nil {
		logging.Fatal("Failed to initialize meter", zap.Error(err))
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			logging.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	// Review events are consumed on a single goroutine
	notifier := review.NewChannelNotifier(cfg.EventBufferSize)
	defer notifier.Close()
	go logEvents(notifier.Events())

	// Initialize service layer
	reviewService := service.NewReviewService(
		tracer,
		service.NewHTTPProviderSource(cfg.ProvidersURL, cfg.ClientTimeout),
		service.NewHTTPPaymentSink(cfg.PaymentRequestURL, cfg.ClientTimeout),
		notifier,
	)
	reviewService.LoadProviders(context.Background())

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(reviewService, cfg.Review)

	// Setup Gin router
	r := gin.Default()

	// OpenTelemetry middleware
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMetricsMiddleware())

	// Routes
	reviewHandler.Register(r)
	r.GET("/metrics", gin.WrapH(monitoring.MetricsHandler()))

	// Start server
	logging.Info("Payments review service starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Fatal("Failed to start server", zap.Error(err))
	}
}

func logEvents(events <-chan review.Event) {
	for e := range events {
		fields := []zap.Field{zap.String("event", e.Kind.String())}
		if e.RequestID != "" {
			fields = append(fields, zap.String("request_id", e.RequestID))
		}
		if e.Err != nil {
			fields = append(fields, zap.Error(e.Err))
		}
		logging.Info("Review event", fields...)
	}
}

// httpMetricsMiddleware records HTTP request metrics
func httpMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		// Record duration
		duration := float64(time.Since(start).Milliseconds())

		monitoring.HTTPServerDuration.Record(c.Request.Context(), duration,
			metric.WithAttributes(
				attribute.String("http_method", c.Request.Method),
				attribute.String("http_route", c.FullPath()),
				attribute.String("http_status_code", strconv.Itoa(c.Writer.Status())),
			),
		)
	}
}
