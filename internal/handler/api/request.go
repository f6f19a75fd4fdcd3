package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hooklens/internal/handler/dto/response"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestQueries queries.RequestQueries
}

func NewRequestHandler(requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{requestQueries: requestQueries}
}

// @Summary List captured requests
// @Description Newest-first keyset-paginated listing for an endpoint
// @Tags requests
// @Produce json
// @Param id path string true "Endpoint ID"
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.RequestPageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id}/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = n
	}

	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.requestQueries.ListByEndpoint(c.Request.Context(), id, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
		case errors.Is(err, errs.ErrEndpointNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestPage(items, next))
}

// @Summary Get captured request
// @Description Full detail of one captured request
// @Tags requests
// @Produce json
// @Param id path string true "Endpoint ID"
// @Param requestId path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id}/requests/{requestId} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), id, requestID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Captured request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
