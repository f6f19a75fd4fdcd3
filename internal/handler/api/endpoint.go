package api

import (
	"errors"
	"net/http"

	reqdto "hooklens/internal/handler/dto/request"
	resdto "hooklens/internal/handler/dto/response"
	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/commands"
	"hooklens/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EndpointHandler struct {
	endpointCommands commands.EndpointCommands
	exportCommands   commands.ExportCommands
	endpointQueries  queries.EndpointQueries
	clock            clock.Clock
	baseURL          string
}

func NewEndpointHandler(
	endpointCommands commands.EndpointCommands,
	exportCommands commands.ExportCommands,
	endpointQueries queries.EndpointQueries,
	clk clock.Clock,
	cfg config.ServerConfig,
) *EndpointHandler {
	return &EndpointHandler{
		endpointCommands: endpointCommands,
		exportCommands:   exportCommands,
		endpointQueries:  endpointQueries,
		clock:            clk,
		baseURL:          cfg.BaseURL,
	}
}

// @Summary Create capture endpoint
// @Description Create an expiring webhook capture endpoint
// @Tags endpoints
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEndpointRequest true "Endpoint settings"
// @Success 201 {object} resdto.EndpointResponse
// @Failure 400 {object} map[string]string
// @Router /endpoints [post]
func (h *EndpointHandler) CreateEndpoint(c *gin.Context) {
	var req reqdto.CreateEndpointRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	e, err := h.endpointCommands.Create(c.Request.Context(), commands.CreateEndpointInput{
		Name:          req.GetName(),
		Description:   req.Description,
		MaxRequests:   req.MaxRequests,
		RetentionDays: req.RetentionDays,
		IsPublic:      req.IsPublic,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidQuota):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "max_requests is out of range",
			})
		case errors.Is(err, errs.ErrInvalidRetention):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "retention_days is out of range",
			})
		case errors.Is(err, errs.ErrInvalidExpiry):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "expires_at must be in the future",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEndpointEntity(e, h.baseURL))
}

// @Summary Get endpoint
// @Description Get endpoint detail by ID
// @Tags endpoints
// @Produce json
// @Param id path string true "Endpoint ID"
// @Success 200 {object} resdto.EndpointResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id} [get]
func (h *EndpointHandler) GetEndpoint(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	view, err := h.endpointQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEndpointLookupErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEndpointView(view, h.baseURL))
}

// @Summary Disable endpoint
// @Description Turn off an endpoint so it stops accepting captures
// @Tags endpoints
// @Produce json
// @Param id path string true "Endpoint ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id} [delete]
func (h *EndpointHandler) DisableEndpoint(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	if err := h.endpointCommands.Disable(c.Request.Context(), id); err != nil {
		respondEndpointLookupErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Endpoint health
// @Description Operational snapshot: status, usage, last captured request
// @Tags endpoints
// @Produce json
// @Param id path string true "Endpoint ID"
// @Success 200 {object} resdto.EndpointHealthResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id}/health [get]
func (h *EndpointHandler) GetHealth(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	health, err := h.endpointQueries.GetHealth(c.Request.Context(), id, h.clock.Now())
	if err != nil {
		respondEndpointLookupErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEndpointHealth(health, h.baseURL))
}

// @Summary Export captured requests
// @Description Schedule an asynchronous export of all captured requests
// @Tags endpoints
// @Accept json
// @Produce json
// @Param id path string true "Endpoint ID"
// @Param request body reqdto.StartExportRequest true "Export format (json or csv)"
// @Success 202 {object} resdto.ExportResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /endpoints/{id}/exports [post]
func (h *EndpointHandler) StartExport(c *gin.Context) {
	id, ok := parseEndpointID(c)
	if !ok {
		return
	}

	var req reqdto.StartExportRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ticket, err := h.exportCommands.Start(c.Request.Context(), id, req.Format)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidExportFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "format must be json or csv",
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

	c.JSON(http.StatusAccepted, resdto.FromExportTicket(ticket))
}

func parseEndpointID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid endpoint ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondEndpointLookupErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEndpointNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Endpoint not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
