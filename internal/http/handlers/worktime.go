package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/domain/timeentry"
	"github.com/taskflow/taskflow/internal/http/middlewares"
)

const defaultSeriesDays = 7

type WorktimeStore interface {
	AddTimeEntry(userID string, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntry, error)
	WorktimeSeries(userID, start string, days int) []timeentry.Bucket
}

type WorktimeHandler struct {
	store WorktimeStore
}

func NewWorktimeHandler(store WorktimeStore) *WorktimeHandler {
	return &WorktimeHandler{store: store}
}

// GetSeries returns one zero-filled bucket per day. days defaults to 7 and
// is clamped by the store to at most 14; start defaults to today.
func (h *WorktimeHandler) GetSeries(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	days := defaultSeriesDays

	if raw := ctx.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)

		if err != nil {
			RespondBadRequest(ctx, "days must be an integer")
			return
		}

		days = parsed
	}

	ctx.JSON(http.StatusOK, h.store.WorktimeSeries(userID, ctx.Query("start"), days))
}

func (h *WorktimeHandler) AddEntry(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	var req timeentry.CreateTimeEntryRequest

	if !BindJSON(ctx, &req) {
		return
	}

	entry, err := h.store.AddTimeEntry(userID, req)

	if err != nil {
		RespondInternal(ctx, "Could not record time entry")
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}
