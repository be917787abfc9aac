package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r-G7D/color-outfit-app/internal/domain/coloranalysis"
)

// Handler wires the HTTP transport to the analysis service.
type Handler struct {
	analysisSvc coloranalysis.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(analysisSvc coloranalysis.Service, logger *slog.Logger) *Handler {
	return &Handler{
		analysisSvc: analysisSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Analyze forwards the user's attributes to the analysis service and relays the result.
func (h *Handler) Analyze(c *gin.Context) {
	var req coloranalysis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, codeInvalidRequest, msgServerError, err))
		return
	}

	res, err := h.analysisSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}

	if !res.Usage.IsZero() {
		h.logger.Debug("analysis token usage", "prompt_tokens", res.Usage.PromptTokens, "completion_tokens", res.Usage.CompletionTokens)
	}
	c.JSON(http.StatusOK, res.Analysis)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
