package model

import "time"

// Task represents a row in the `tasks` table. Tasks belong to exactly one
// user and are only ever visible to that user; OwnerID is set at creation and
// never changes. Status is free-form text with conventional values such as
// "To-Do", "In Progress" and "Completed": the server does not enforce an
// enumeration. Tasks are serialized directly in API responses, hence the
// JSON tags.
type Task struct {
	ID          uint64    `json:"id"`          // tasks.id
	Title       string    `json:"title"`       // tasks.title
	Description string    `json:"description"` // tasks.description
	Status      string    `json:"status"`      // tasks.status
	OwnerID     uint64    `json:"owner_id"`    // tasks.owner_id (references users.id)
	CreatedAt   time.Time `json:"created_at"`  // tasks.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // tasks.updated_at
}

// DefaultStatus is applied when a task is created without an explicit status.
const DefaultStatus = "To-Do"
