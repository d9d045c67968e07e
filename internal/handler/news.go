package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nextplay/internal/apperr"
	"nextplay/internal/auth"
	"nextplay/internal/service"
)

type NewsHandler struct {
	Trending  *service.TrendingService
	Community *service.CommunityService
	Logger    *zap.Logger
}

func (h *NewsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/news")
	group.GET("/trending", h.trending)
	group.GET("/community", h.listCommunity)
	group.POST("/community", auth.Require(), h.createCommunity)
	group.PUT("/community", auth.Require(), h.updateCommunity)
	group.PUT("/community/:id", auth.Require(), h.updateCommunity)
	group.DELETE("/community", auth.Require(), h.deleteCommunity)
	group.DELETE("/community/:id", auth.Require(), h.deleteCommunity)
}

// @Summary Trending gaming news
// @Tags news
// @Param max query int false "articles per page"
// @Param page query int false "topic rotation page"
// @Param q query string false "explicit search query (disables rotation)"
// @Success 200 {object} service.TrendingPage
// @Router /api/news/trending [get]
func (h *NewsHandler) trending(c *gin.Context) {
	page, err := h.Trending.Fetch(c.Request.Context(), service.TrendingQuery{
		Max:   intQuery(c, "max", 0),
		Page:  intQuery(c, "page", 0),
		Query: strQuery(c, "q"),
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("trending news failed", zap.Error(err))
		}
		Fail(c, err)
		return
	}
	Ok(c, page)
}

// @Summary List community news
// @Tags news
// @Success 200 {array} models.CommunityNews
// @Router /api/news/community [get]
func (h *NewsHandler) listCommunity(c *gin.Context) {
	items, err := h.Community.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list community news failed", zap.Error(err))
		}
		Fail(c, err)
		return
	}
	Ok(c, items)
}

// @Summary Create a community news item
// @Tags news
// @Param body body service.CommunityNewsInput true "item"
// @Success 201 {object} models.CommunityNews
// @Router /api/news/community [post]
func (h *NewsHandler) createCommunity(c *gin.Context) {
	var in service.CommunityNewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.Community.Create(c.Request.Context(), auth.UserID(c), in)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// @Summary Update an owned community news item
// @Tags news
// @Param id path string true "item id"
// @Param body body service.UpdateCommunityNewsInput true "item"
// @Success 200 {object} models.CommunityNews
// @Router /api/news/community/{id} [put]
func (h *NewsHandler) updateCommunity(c *gin.Context) {
	var in service.UpdateCommunityNewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if id := c.Param("id"); id != "" {
		in.ID = id
	}
	item, err := h.Community.Update(c.Request.Context(), auth.UserID(c), in)
	if err != nil {
		Fail(c, err)
		return
	}
	Ok(c, item)
}

// @Summary Delete an owned community news item
// @Tags news
// @Param id path string true "item id"
// @Success 200 {object} map[string]bool
// @Router /api/news/community/{id} [delete]
func (h *NewsHandler) deleteCommunity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		var in struct {
			ID string `json:"id"`
		}
		if err := c.ShouldBindJSON(&in); err == nil {
			id = in.ID
		}
	}
	if id == "" {
		Fail(c, apperr.New(apperr.ValidationFailed, "id required"))
		return
	}
	if err := h.Community.Delete(c.Request.Context(), auth.UserID(c), id); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, gin.H{"success": true})
}
