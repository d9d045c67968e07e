package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nextplay/internal/repository"
)

type SourcesHandler struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (h *SourcesHandler) Register(r *gin.Engine) {
	r.GET("/api/sources/state", h.listStates)
}

// @Summary Upstream source fetch bookkeeping
// @Tags sources
// @Success 200 {array} models.SourceState
// @Router /api/sources/state [get]
func (h *SourcesHandler) listStates(c *gin.Context) {
	states, err := h.Repo.ListSourceStates(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list source states failed", zap.Error(err))
		}
		Fail(c, err)
		return
	}
	Ok(c, states)
}
