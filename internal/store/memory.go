package store

import (
	"context"

	"dailytodos/internal/models"
)

// MemoryStore holds the todo sequence and id counter in memory behind a
// single exclusion point. The lock is a capacity-1 channel rather than a
// sync.Mutex so acquisition observes the request context and fails with a
// LockError instead of blocking past the request's lifetime.
type MemoryStore struct {
	lock   chan struct{}
	todos  []models.Todo
	nextID uint64
}

// NewMemoryStore creates an empty in-memory store with ids starting at 0.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lock: make(chan struct{}, 1)}
}

func (s *MemoryStore) acquire(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return &LockError{Op: op, Err: err}
	}
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return &LockError{Op: op, Err: ctx.Err()}
	}
}

func (s *MemoryStore) release() {
	<-s.lock
}

// CreateTodo appends a new todo with the next id and returns a copy of it.
// The text is stored as given; empty text is allowed.
func (s *MemoryStore) CreateTodo(ctx context.Context, text string) (models.Todo, error) {
	if err := s.acquire(ctx, "create"); err != nil {
		return models.Todo{}, err
	}
	defer s.release()

	todo := models.Todo{ID: s.nextID, Text: text}
	s.todos = append(s.todos, todo)
	s.nextID++
	return todo, nil
}

// ToggleTodo flips the done flag of the todo with the given id and returns
// a copy of the updated todo, or ErrNotFound when no todo has that id.
func (s *MemoryStore) ToggleTodo(ctx context.Context, id uint64) (models.Todo, error) {
	if err := s.acquire(ctx, "toggle"); err != nil {
		return models.Todo{}, err
	}
	defer s.release()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Done = !s.todos[i].Done
			return s.todos[i], nil
		}
	}
	return models.Todo{}, ErrNotFound
}

// ListTodos returns a point-in-time copy of the todo sequence in insertion
// order. Callers never receive a reference into internal storage.
func (s *MemoryStore) ListTodos(ctx context.Context) ([]models.Todo, error) {
	if err := s.acquire(ctx, "list"); err != nil {
		return nil, err
	}
	defer s.release()

	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out, nil
}

// Summary counts completed and total todos from one consistent snapshot.
func (s *MemoryStore) Summary(ctx context.Context) (models.Summary, error) {
	if err := s.acquire(ctx, "summary"); err != nil {
		return models.Summary{}, err
	}
	defer s.release()

	sum := models.Summary{Total: len(s.todos)}
	for _, todo := range s.todos {
		if todo.Done {
			sum.Completed++
		}
	}
	return sum, nil
}

// Close implements Store. The memory store holds nothing to release.
func (s *MemoryStore) Close() error { return nil }
