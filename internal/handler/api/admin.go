package api

import (
	"net/http"

	resdto "hooklens/internal/handler/dto/response"
	"hooklens/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operational actions that normally run on the
// background ticker.
type AdminHandler struct {
	sweepCommands commands.SweepCommands
}

func NewAdminHandler(sweepCommands commands.SweepCommands) *AdminHandler {
	return &AdminHandler{sweepCommands: sweepCommands}
}

// @Summary Trigger cleanup sweep
// @Description Run one expiry and retention pass immediately
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.SweepResponse
// @Failure 500 {object} map[string]string
// @Router /admin/sweep [post]
func (h *AdminHandler) TriggerSweep(c *gin.Context) {
	result, err := h.sweepCommands.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}
