// Package queue defines message payloads exchanged over the message broker.
package queue

// TaskActivityEvent is published after a task is created, updated or deleted.
// It carries enough information for downstream consumers to log or trigger
// notifications without querying the primary database.
type TaskActivityEvent struct {
	TaskID     uint64 `json:"task_id"`
	UserID     uint64 `json:"user_id"`
	Action     string `json:"action"` // created | updated | deleted
	Title      string `json:"title"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}
