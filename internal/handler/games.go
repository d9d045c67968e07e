package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nextplay/internal/apperr"
	"nextplay/internal/client/freetogame"
	"nextplay/internal/service"
)

type GamesHandler struct {
	Service *service.CatalogService
	Logger  *zap.Logger
}

func (h *GamesHandler) Register(r *gin.Engine) {
	group := r.Group("/api/games")
	group.GET("", h.listGames)
	group.GET("/:id", h.getGame)
}

// @Summary List catalog games
// @Tags games
// @Param platform query string false "platform (pc|browser|all)"
// @Param category query string false "genre filter"
// @Param sort-by query string false "sort order (release-date|popularity|alphabetical|relevance)"
// @Success 200 {array} freetogame.Game
// @Router /api/games [get]
func (h *GamesHandler) listGames(c *gin.Context) {
	games, err := h.Service.List(c.Request.Context(), freetogame.Query{
		Platform: strQuery(c, "platform"),
		Category: strQuery(c, "category"),
		SortBy:   strQuery(c, "sort-by"),
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list games failed", zap.Error(err))
		}
		Fail(c, err)
		return
	}
	Ok(c, games)
}

// @Summary Get one game with details
// @Tags games
// @Param id path int true "game id"
// @Success 200 {object} freetogame.GameDetails
// @Router /api/games/{id} [get]
func (h *GamesHandler) getGame(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		Fail(c, apperr.New(apperr.ValidationFailed, "invalid game id"))
		return
	}
	game, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("get game failed", zap.Int("id", id), zap.Error(err))
		}
		Fail(c, err)
		return
	}
	Ok(c, game)
}
