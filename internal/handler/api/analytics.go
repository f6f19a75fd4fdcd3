package api

import (
	"errors"
	"net/http"

	resdto "hooklens/internal/handler/dto/response"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsQueries queries.AnalyticsQueries
}

func NewAnalyticsHandler(analyticsQueries queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsQueries: analyticsQueries}
}

// @Summary Endpoint analytics
// @Description Rolling aggregates for an endpoint; zeroes before the first capture
// @Tags analytics
// @Produce json
// @Param id path string true "Endpoint ID"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id}/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	view, err := h.analyticsQueries.GetByEndpoint(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrEndpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnalyticsView(view))
}
