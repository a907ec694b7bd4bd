package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/domain/activity"
	"github.com/taskflow/taskflow/internal/http/middlewares"
	"github.com/taskflow/taskflow/internal/store"
)

// recentActivityLimit caps the activity feed length.
const recentActivityLimit = 20

type ActivityStore interface {
	ActivityTable(userID string) []store.ActivityRow
	RecentActivities(limit int) []activity.FeedItem
}

type ActivityHandler struct {
	store ActivityStore
}

func NewActivityHandler(store ActivityStore) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// Table returns one row per (task, assignee) across the caller's projects.
func (h *ActivityHandler) Table(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, h.store.ActivityTable(userID))
}

// Feed returns the most recent change-log entries, newest first.
func (h *ActivityHandler) Feed(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.store.RecentActivities(recentActivityLimit))
}
