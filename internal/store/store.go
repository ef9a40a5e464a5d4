package store

import (
	"context"
	"errors"
	"fmt"

	"dailytodos/internal/models"
)

// ErrNotFound is returned by lookups when no todo has the requested id.
// It is a defined no-match outcome, not a failure.
var ErrNotFound = errors.New("todo not found")

// LockError reports that a store operation could not acquire the store's
// synchronization point. Op names the operation that attempted the lock.
type LockError struct {
	Op  string
	Err error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("%s: store lock unavailable: %v", e.Op, e.Err)
}

func (e *LockError) Unwrap() error { return e.Err }

// Store defines the operations on the shared todo collection. Each
// operation is atomic with respect to the others: no caller observes a
// partially applied mutation.
type Store interface {
	// CreateTodo appends a new todo with the next id and returns a copy of it.
	CreateTodo(ctx context.Context, text string) (models.Todo, error)

	// ToggleTodo flips the done flag of the todo with the given id and
	// returns a copy of the updated todo, or ErrNotFound when no todo has
	// that id (in which case nothing changed).
	ToggleTodo(ctx context.Context, id uint64) (models.Todo, error)

	// ListTodos returns a point-in-time copy of the todo sequence in
	// insertion order.
	ListTodos(ctx context.Context) ([]models.Todo, error)

	// Summary counts completed and total todos from one consistent snapshot.
	Summary(ctx context.Context) (models.Summary, error)

	// Lifecycle
	Close() error
}
