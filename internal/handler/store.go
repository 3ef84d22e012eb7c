package handler

import (
	"context"

	"github.com/iliyamo/task-tracker/internal/model"
)

// UserStore is the persistence surface the auth handlers need. It is
// implemented by repository.UserRepo and by in-memory fakes in tests.
// GetByEmail and GetByID report absence with sql.ErrNoRows.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// TaskStore is the persistence surface the task handlers need, implemented by
// repository.TaskRepo. Every method is owner-scoped: a task that exists but
// belongs to another user is reported as repository.ErrTaskNotFound.
type TaskStore interface {
	Create(ctx context.Context, t *model.Task) error
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.Task, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error
}
