package api

import (
	"errors"
	"io"
	"net/http"

	resdto "hooklens/internal/handler/dto/response"
	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaptureHandler is the open intake: any method, any body, any content
// type. Everything it answers is JSON even though the inbound payload
// rarely is.
type CaptureHandler struct {
	captureCommands commands.CaptureCommands
	maxBodyBytes    int64
}

func NewCaptureHandler(captureCommands commands.CaptureCommands, cfg config.CaptureConfig) *CaptureHandler {
	return &CaptureHandler{
		captureCommands: captureCommands,
		maxBodyBytes:    cfg.MaxBodyBytes,
	}
}

// @Summary Capture webhook request
// @Description Record an inbound request against an endpoint token
// @Tags capture
// @Produce json
// @Param token path string true "Endpoint token"
// @Success 200 {object} resdto.CaptureAckResponse
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /hooks/{token} [post]
func (h *CaptureHandler) Capture(c *gin.Context) {
	// A malformed token can never match an endpoint, so it answers the
	// same way an unknown one does.
	endpointID, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Endpoint not found",
		})
		return
	}

	body, err := h.readBody(c)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "Request body too large",
		})
		return
	}

	result, err := h.captureCommands.Capture(c.Request.Context(), endpointID, c.Request, body)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEndpointNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
			})
		case errors.Is(err, errs.ErrEndpointGone):
			c.JSON(http.StatusGone, gin.H{
				"error": "Endpoint expired or request limit reached",
			})
		case errors.Is(err, errs.ErrDatabaseOperationFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCaptureResult(result))
}

func (h *CaptureHandler) readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	limited := http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	return body, nil
}
