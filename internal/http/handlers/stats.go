package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/cache"
	"github.com/taskflow/taskflow/internal/http/middlewares"
	"github.com/taskflow/taskflow/internal/store"
)

type StatsStore interface {
	UserStats(userID string) store.Stats
	Revision() uint64
}

type StatsHandler struct {
	store StatsStore
	cache *cache.Cache
}

func NewStatsHandler(store StatsStore) *StatsHandler {
	return &StatsHandler{store: store}
}

func NewStatsHandlerWithCache(store StatsStore, c *cache.Cache) *StatsHandler {
	return &StatsHandler{store: store, cache: c}
}

// Get computes the dashboard aggregate. Results are cached per user at the
// store revision they were computed from, so any mutation invalidates them.
func (h *StatsHandler) Get(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	key := ""

	if h.cache != nil {
		key = buildStatsCacheKey(userID, h.store.Revision())

		if cached, hit := h.cache.Get(key); hit {
			if stats, ok := cached.(store.Stats); ok {
				ctx.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	stats := h.store.UserStats(userID)

	if h.cache != nil {
		h.cache.Set(key, stats)
	}

	ctx.JSON(http.StatusOK, stats)
}

func buildStatsCacheKey(userID string, rev uint64) string {
	return "stats:v1:" + userID + ":rev=" + strconv.FormatUint(rev, 10)
}
