package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"payments-review/config"
	"payments-review/logging"
	"payments-review/models"
	"payments-review/review"
	"payments-review/service"
)

// ReviewHandler handles HTTP requests of the payment review form
type ReviewHandler struct {
	reviewService *service.ReviewService
	cfg           config.ReviewConfig
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService, cfg config.ReviewConfig) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		cfg:           cfg,
	}
}

// Register mounts the review routes on the router
func (h *ReviewHandler) Register(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api/payments/review")
	api.POST("/prefill", h.Prefill)
	api.POST("/validate", h.Validate)
	api.POST("/amount", h.Amount)
	api.POST("/submit", h.Submit)
}

// Prefill fills the form from document extractions
func (h *ReviewHandler) Prefill(c *gin.Context) {
	var req models.PrefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := h.reviewService.Prefill(c.Request.Context(), req.Extractions)
	c.JSON(http.StatusOK, models.PrefillResponse{Fields: models.FromFieldValues(fields)})
}

// Validate checks a single field after editing ended
func (h *ReviewHandler) Validate(c *gin.Context) {
	var req models.Field
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, ok := review.ParseFieldKind(req.Field)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field " + req.Field})
		return
	}

	res, display := h.reviewService.ValidateField(c.Request.Context(), kind, req.Value)
	c.JSON(http.StatusOK, models.ValidateResponse{
		FieldResult: models.FromResult(res),
		Value:       display,
	})
}

// Amount normalizes an amount typed by the user or read from an extraction
func (h *ReviewHandler) Amount(c *gin.Context) {
	var req models.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount := review.Normalize(req.Raw)
	if req.Extraction != "" {
		amount = review.FromExtraction(req.Extraction)
	}
	c.JSON(http.StatusOK, models.FromAmount(amount))
}

// Submit validates the whole form and creates the payment request
func (h *ReviewHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)

	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields, err := models.ToFieldValues(req.Fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reviewService.Submit(ctx, fields)
	switch {
	case errors.Is(err, review.ErrFieldsInvalid):
		c.JSON(http.StatusUnprocessableEntity, models.SubmitResponse{
			Status:  "invalid",
			Results: models.FromResults(result.Results),
		})
	case errors.Is(err, review.ErrNoProviderSelected):
		c.JSON(http.StatusOK, models.SubmitResponse{
			Status: "skipped",
			Notice: h.cfg.NoProvidersNotice,
		})
	case err != nil:
		logging.WithTraceContext(span).Error("Payment submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, models.SubmitResponse{
			Status: "failed",
			Notice: h.cfg.SubmissionFailedNotice,
		})
	default:
		span.AddEvent("payment_request_created")
		c.JSON(http.StatusOK, models.SubmitResponse{
			Status:    "submitted",
			RequestID: result.RequestID,
			Payment:   &result.Record,
			Results:   models.FromResults(result.Results),
		})
	}
}

// HealthCheck handles health check requests
func (h *ReviewHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"providers": len(h.reviewService.Providers()),
	})
}
