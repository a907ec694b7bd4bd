package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/domain/project"
	"github.com/taskflow/taskflow/internal/http/middlewares"
)

type ProjectStore interface {
	CreateProject(ownerID string, req project.CreateProjectRequest) (project.Project, error)
	ListProjects(ownerID string) []project.Project
	UpdateProject(ownerID, id string, req project.UpdateProjectRequest) (project.Project, error)
	DeleteProject(ownerID, id string) error
}

type ProjectsHandler struct {
	store ProjectStore
}

func NewProjectsHandler(store ProjectStore) *ProjectsHandler {
	return &ProjectsHandler{store: store}
}

func (h *ProjectsHandler) List(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, h.store.ListProjects(userID))
}

func (h *ProjectsHandler) Create(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	var req project.CreateProjectRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.store.CreateProject(userID, req)

	if err != nil {
		RespondInternal(ctx, "Could not create project")
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

func (h *ProjectsHandler) Update(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	var req project.UpdateProjectRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.store.UpdateProject(userID, ctx.Param("id"), req)

	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			RespondNotFound(ctx, "Project not found")
			return
		}

		RespondInternal(ctx, "Could not update project")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// Delete cascades to all tasks of the project as one atomic store
// operation. Deleting an absent project still reports ok.
func (h *ProjectsHandler) Delete(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	err := h.store.DeleteProject(userID, ctx.Param("id"))

	if err != nil {
		RespondInternal(ctx, "Could not delete project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
