package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/task-tracker/internal/config"
	"github.com/iliyamo/task-tracker/internal/middleware"
	"github.com/iliyamo/task-tracker/internal/model"
	"github.com/iliyamo/task-tracker/internal/queue"
	"github.com/iliyamo/task-tracker/internal/repository"
)

// PublishFunc sends a task activity event to the broker. It is a function
// value rather than a concrete client so tests can run without RabbitMQ; nil
// disables publishing.
type PublishFunc func(ctx context.Context, ev queue.TaskActivityEvent) error

// TaskHandler bundles dependencies for the task CRUD endpoints. Publishing
// and cache purging are best effort: a mutation that reached the store
// succeeds regardless of broker or Redis availability.
type TaskHandler struct {
	Cfg      config.Config
	Tasks    TaskStore
	CacheCfg config.CacheConfig
	Rdb      *redis.Client
	Publish  PublishFunc
}

func NewTaskHandler(cfg config.Config, tasks TaskStore, cacheCfg config.CacheConfig, rdb *redis.Client, publish PublishFunc) *TaskHandler {
	return &TaskHandler{Cfg: cfg, Tasks: tasks, CacheCfg: cacheCfg, Rdb: rdb, Publish: publish}
}

type createTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// updateTaskReq uses pointers to distinguish absent fields from empty ones;
// a field that is missing or blank keeps its stored value.
type updateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Create handles POST /api/tasks. Title and description are required;
// status defaults to "To-Do". The owner is always the authenticated caller.
func (h *TaskHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
	}
	var req createTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and description are required"})
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = model.DefaultStatus
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	task := &model.Task{Title: title, Description: description, Status: status, OwnerID: uid}
	if err := h.Tasks.Create(ctx, task); err != nil {
		log.Printf("task create: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create task"})
	}

	h.afterMutation(ctx, uid, task, "created")
	return c.JSON(http.StatusCreated, echo.Map{"message": "Task created successfully", "task": task})
}

// List handles GET /api/tasks and returns every task owned by the caller.
// No tasks is a normal outcome: the response is 200 with an empty array.
func (h *TaskHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByOwner(ctx, uid)
	if err != nil {
		log.Printf("task list: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list tasks"})
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /api/tasks/:id. A task that does not exist and a task
// owned by someone else produce the same 404.
func (h *TaskHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	task, err := h.Tasks.GetByIDAndOwner(ctx, id, uid)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
		}
		log.Printf("task get: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load task"})
	}
	return c.JSON(http.StatusOK, task)
}

// Update handles PUT /api/tasks/:id. At least one of title, description or
// status must be supplied; omitted fields keep their stored values. The
// ownership check and the 404 conflation match Get.
func (h *TaskHandler) Update(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}
	var req updateTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	title := optional(req.Title)
	description := optional(req.Description)
	status := optional(req.Status)
	if title == "" && description == "" && status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one field is required to update the task"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	task, err := h.Tasks.GetByIDAndOwner(ctx, id, uid)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
		}
		log.Printf("task update: load: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update task"})
	}
	if title != "" {
		task.Title = title
	}
	if description != "" {
		task.Description = description
	}
	if status != "" {
		task.Status = status
	}
	if err := h.Tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
		}
		log.Printf("task update: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update task"})
	}

	h.afterMutation(ctx, uid, task, "updated")
	return c.JSON(http.StatusOK, echo.Map{"message": "Task updated successfully", "updatedTask": task})
}

// Delete handles DELETE /api/tasks/:id. Deleting an absent or foreign task
// yields 404, so a second delete of the same id fails the same way as a
// probe against another user's task.
func (h *TaskHandler) Delete(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid token"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	task, err := h.Tasks.GetByIDAndOwner(ctx, id, uid)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
		}
		log.Printf("task delete: load: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete task"})
	}
	if err := h.Tasks.DeleteByIDAndOwner(ctx, id, uid); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
		}
		log.Printf("task delete: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete task"})
	}

	h.afterMutation(ctx, uid, task, "deleted")
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

// afterMutation purges the user's cached responses and publishes an activity
// event. Both are best effort; publish errors are already logged by the
// publisher.
func (h *TaskHandler) afterMutation(ctx context.Context, uid uint64, task *model.Task, action string) {
	middleware.PurgeUserCache(ctx, h.CacheCfg, h.Rdb, uid)
	if h.Publish != nil {
		_ = h.Publish(ctx, queue.TaskActivityEvent{
			TaskID:     task.ID,
			UserID:     uid,
			Action:     action,
			Title:      task.Title,
			Status:     task.Status,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
