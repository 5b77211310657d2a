package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecoscore/backend/internal/domain"
	"github.com/ecoscore/backend/internal/metrics"
	"github.com/ecoscore/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis  *usecase.AnalysisService
	packaging *usecase.PackagingService
}

// NewHandler creates a new HTTP handler
func NewHandler(analysis *usecase.AnalysisService, packaging *usecase.PackagingService) *Handler {
	return &Handler{
		analysis:  analysis,
		packaging: packaging,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ecoscore-backend",
		"version": "1.0.0",
	})
}

// analyzeRequest allows empty text when the caller explicitly opts into the
// material-prior fallback (the OCR path sends whatever it extracted).
type analyzeRequest struct {
	Text          string `json:"text"`
	AllowFallback bool   `json:"allowFallback"`
}

// AnalyzeText handles textile analysis requests
func (h *Handler) AnalyzeText(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "analysis service not configured",
		})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request must be JSON"})
		return
	}

	var (
		result *domain.AnalysisResult
		err    error
	)
	if strings.TrimSpace(req.Text) == "" {
		if !req.AllowFallback {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
			return
		}
		result, err = h.analysis.AnalyzeFallback(c.Request.Context())
	} else {
		result, err = h.analysis.AnalyzeText(c.Request.Context(), req.Text)
	}

	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	metrics.AnalysesTotal.WithLabelValues("analyze", string(result.Summary)).Inc()
	if result.EnvironmentalClaim {
		metrics.SignalsApplied.WithLabelValues("envClaim").Inc()
	}
	if len(result.WebVerification) > 0 {
		metrics.SignalsApplied.WithLabelValues("webVerification").Inc()
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzePackaging handles packaging analysis requests
func (h *Handler) AnalyzePackaging(c *gin.Context) {
	if h.packaging == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "packaging service not configured",
		})
		return
	}

	var req domain.PackagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "material and city are required"})
		return
	}

	report, err := h.packaging.Analyze(c.Request.Context(), req.Material, req.City)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMaterialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "material and city are required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	metrics.AnalysesTotal.WithLabelValues("packaging", string(report.Summary)).Inc()

	c.JSON(http.StatusOK, report)
}
