package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/taskflow/internal/domain/project"
	"github.com/taskflow/taskflow/internal/domain/task"
	"github.com/taskflow/taskflow/internal/http/middlewares"
)

type TaskStore interface {
	CreateTask(ownerID string, req task.CreateTaskRequest) (task.Task, error)
	ListTasks(ownerID, projectID string) []task.Task
	UpdateTask(ownerID, id string, req task.UpdateTaskRequest) (task.Task, error)
	DeleteTask(ownerID, id string) error
}

type TasksHandler struct {
	store TaskStore
}

func NewTasksHandler(store TaskStore) *TasksHandler {
	return &TasksHandler{store: store}
}

func (h *TasksHandler) List(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	projectID := ctx.Query("projectId")

	if projectID == "" {
		RespondBadRequest(ctx, "projectId is required")
		return
	}

	ctx.JSON(http.StatusOK, h.store.ListTasks(userID, projectID))
}

func (h *TasksHandler) Create(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	var req task.CreateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.store.CreateTask(userID, req)

	if err != nil {
		switch {
		case errors.Is(err, project.ErrNotFound):
			RespondNotFound(ctx, "Project not found")
		case errors.Is(err, task.ErrNoAssignees):
			RespondBadRequest(ctx, "Assign at least one user")
		default:
			RespondInternal(ctx, "Could not create task")
		}
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

func (h *TasksHandler) Update(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	var req task.UpdateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.store.UpdateTask(userID, ctx.Param("id"), req)

	if err != nil {
		switch {
		case errors.Is(err, task.ErrNotFound):
			RespondNotFound(ctx, "Task not found")
		case errors.Is(err, task.ErrNoAssignees):
			RespondBadRequest(ctx, "Assign at least one user")
		default:
			RespondInternal(ctx, "Could not update task")
		}
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// Delete verifies the task's project belongs to the caller before removal.
func (h *TasksHandler) Delete(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)

	if !ok {
		RespondUnauthorized(ctx)
		return
	}

	err := h.store.DeleteTask(userID, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			RespondNotFound(ctx, "Task not found")
			return
		}

		RespondInternal(ctx, "Could not delete task")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
