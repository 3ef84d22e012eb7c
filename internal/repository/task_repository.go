package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/task-tracker/internal/model"
)

// TaskRepo encapsulates all database queries related to tasks. Every read and
// mutation is scoped by owner_id in SQL, so a task owned by someone else
// behaves exactly like a task that does not exist.
type TaskRepo struct{ db *sql.DB }

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

// Create inserts a new task. On success the task's ID field is populated with
// the auto-generated value and a follow-up SELECT fills in the DB-assigned
// timestamps so callers receive a fully populated record.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (title, description, status, owner_id) VALUES (?,?,?,?)",
		t.Title, t.Description, t.Status, t.OwnerID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)

	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM tasks WHERE id=?",
		t.ID).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// ListByOwner returns all tasks belonging to the given user ordered by id.
// An empty result is a normal outcome and yields an empty slice, not an error.
func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,title,description,status,owner_id,created_at,updated_at FROM tasks WHERE owner_id=? ORDER BY id",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a task by id, but only if it belongs to the given
// user. Absent and foreign-owned tasks both return ErrTaskNotFound.
func (r *TaskRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Task, error) {
	var t model.Task
	err := r.db.QueryRowContext(ctx,
		"SELECT id,title,description,status,owner_id,created_at,updated_at FROM tasks WHERE id=? AND owner_id=? LIMIT 1",
		id, ownerID).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update writes the task's title, description and status. The WHERE clause is
// owner-scoped; zero rows affected means not-found-or-not-owned and maps to
// ErrTaskNotFound. OwnerID itself is never updatable.
func (r *TaskRepo) Update(ctx context.Context, t *model.Task) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title=?, description=?, status=?, updated_at=CURRENT_TIMESTAMP WHERE id=? AND owner_id=?",
		t.Title, t.Description, t.Status, t.ID, t.OwnerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected can also be zero for a no-op update of identical
		// values, so re-check existence before reporting not found.
		if _, err := r.GetByIDAndOwner(ctx, t.ID, t.OwnerID); err != nil {
			return err
		}
	}
	return r.db.QueryRowContext(ctx,
		"SELECT updated_at FROM tasks WHERE id=?", t.ID).Scan(&t.UpdatedAt)
}

// DeleteByIDAndOwner removes a task if it belongs to the given user. Returns
// ErrTaskNotFound when nothing was deleted.
func (r *TaskRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id=? AND owner_id=?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
