package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nextplay/internal/apperr"
	"nextplay/internal/auth"
	"nextplay/internal/service"
)

type FavoritesHandler struct {
	Service *service.FavoritesService
	Logger  *zap.Logger
}

func (h *FavoritesHandler) Register(r *gin.Engine) {
	group := r.Group("/api/favorites", auth.Require())
	group.GET("", h.listFavorites)
	group.POST("", h.addFavorite)
	group.DELETE("", h.removeFavorite)
	group.DELETE("/:gameID", h.removeFavorite)
}

// @Summary List the caller's favorites
// @Tags favorites
// @Success 200 {array} models.Favorite
// @Router /api/favorites [get]
func (h *FavoritesHandler) listFavorites(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list favorites failed", zap.Error(err))
		}
		Fail(c, err)
		return
	}
	Ok(c, items)
}

// @Summary Favorite a game
// @Tags favorites
// @Param body body service.AddFavoriteInput true "game snapshot"
// @Success 201 {object} models.Favorite
// @Router /api/favorites [post]
func (h *FavoritesHandler) addFavorite(c *gin.Context) {
	var in service.AddFavoriteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.Service.Add(c.Request.Context(), auth.UserID(c), in)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// @Summary Unfavorite a game
// @Tags favorites
// @Param gameID path int true "game id"
// @Success 200 {object} map[string]bool
// @Router /api/favorites/{gameID} [delete]
func (h *FavoritesHandler) removeFavorite(c *gin.Context) {
	var gameID int
	if raw := c.Param("gameID"); raw != "" {
		id, ok := intParam(c, "gameID")
		if !ok {
			Fail(c, apperr.New(apperr.ValidationFailed, "invalid game id"))
			return
		}
		gameID = id
	} else {
		var in struct {
			GameID int `json:"game_id"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		gameID = in.GameID
	}
	if err := h.Service.Remove(c.Request.Context(), auth.UserID(c), gameID); err != nil {
		Fail(c, err)
		return
	}
	Ok(c, gin.H{"success": true})
}
