package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pricelens/backend/internal/domain"
)

// Version is reported by the health check
const Version = "1.0.0"

// Comparer runs a price comparison for one product URL
type Comparer interface {
	Compare(ctx context.Context, productURL string) *domain.ComparisonResult
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparer Comparer
}

// NewHandler creates a new HTTP handler. A nil comparer makes the
// comparison endpoints answer 503.
func NewHandler(comparer Comparer) *Handler {
	return &Handler{comparer: comparer}
}

// CompareRequest is the JSON body of the compare endpoint
type CompareRequest struct {
	ProductURL string `json:"product_url" binding:"required"`
}

// indexPage is the data rendered by the HTML form
type indexPage struct {
	InputURL string
	Result   *domain.ComparisonResult
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricelens-backend",
		"version": Version,
	})
}

// Index renders the empty lookup form
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplateName, indexPage{})
}

// SubmitForm runs a comparison for the submitted form and renders the result
func (h *Handler) SubmitForm(c *gin.Context) {
	if h.comparer == nil {
		c.String(http.StatusServiceUnavailable, "comparison service not configured")
		return
	}

	input := strings.TrimSpace(c.PostForm("product_url"))
	result := h.comparer.Compare(c.Request.Context(), input)

	c.HTML(http.StatusOK, indexTemplateName, indexPage{
		InputURL: input,
		Result:   result,
	})
}

// Compare handles JSON comparison requests
func (h *Handler) Compare(c *gin.Context) {
	if h.comparer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "comparison service not configured",
		})
		return
	}

	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Debug("http: invalid compare request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: product_url is required",
		})
		return
	}

	result := h.comparer.Compare(c.Request.Context(), req.ProductURL)

	status := http.StatusOK
	if result.ErrorKind == domain.ErrorKindInput {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}
