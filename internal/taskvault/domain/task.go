package domain

import "time"

// TaskID is a monotonically increasing integer, unique for the process
// lifetime and never reused, even after deletion.
type TaskID uint64

// Task is a single todo item. Owner is set at creation and never changes;
// no query or mutation path reaches a task except through its owner.
type Task struct {
	ID        TaskID
	Title     string
	Completed bool
	Important bool
	CreatedAt time.Time
	DueDate   uint64 // caller-supplied epoch value, stored verbatim and unvalidated
	Owner     Identity
}
