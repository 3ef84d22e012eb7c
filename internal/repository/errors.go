// Package repository defines sentinel errors reused across repositories so
// that handlers can translate failure scenarios into HTTP responses without
// inspecting driver-specific errors.
package repository

import "errors"

// ErrEmailExists is returned when a user cannot be created because the email
// address is already registered. The authoritative source of this error is
// the UNIQUE index on users.email; the application-level existence check is
// only a fast path.
var ErrEmailExists = errors.New("email already exists")

// ErrTaskNotFound is returned when a task does not exist OR when it exists
// but belongs to a different user. The two cases are deliberately
// indistinguishable so that callers cannot probe for other users' task ids.
var ErrTaskNotFound = errors.New("task not found")
