package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/domain/user"
)

type UserLister interface {
	ListUsers() []user.User
}

type UsersHandler struct {
	store UserLister
}

func NewUsersHandler(store UserLister) *UsersHandler {
	return &UsersHandler{store: store}
}

// List exposes every registered user's public fields. Global by design:
// any authenticated user can assign tasks to any other.
func (h *UsersHandler) List(ctx *gin.Context) {
	users := h.store.ListUsers()

	out := make([]user.Public, 0, len(users))

	for _, u := range users {
		out = append(out, u.Public())
	}

	RespondJSONWithETag(ctx, http.StatusOK, out)
}
