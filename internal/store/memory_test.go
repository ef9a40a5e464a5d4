package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestMemoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		todo, err := s.CreateTodo(ctx, "task")
		if err != nil {
			t.Fatalf("CreateTodo failed: %v", err)
		}
		if todo.ID != uint64(i) {
			t.Errorf("expected id %d, got %d", i, todo.ID)
		}
		if todo.Done {
			t.Error("expected new todo to start not done")
		}
	}
}

func TestMemoryStore_ConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const n = 100
	ids := make(chan uint64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			todo, err := s.CreateTodo(ctx, "task")
			if err != nil {
				t.Errorf("CreateTodo failed: %v", err)
				return
			}
			ids <- todo.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}

	for i := uint64(0); i < n; i++ {
		if !seen[i] {
			t.Fatalf("expected id %d to be assigned", i)
		}
	}
}

func TestMemoryStore_ToggleIsSelfInverse(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateTodo(ctx, "task")
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	first, err := s.ToggleTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	if !first.Done {
		t.Fatal("expected first toggle to mark todo done")
	}

	second, err := s.ToggleTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	if second.Done != created.Done {
		t.Fatal("expected second toggle to restore original done state")
	}
}

func TestMemoryStore_ToggleUnknownIDLeavesStoreUnchanged(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.CreateTodo(ctx, "task")
	before, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}

	_, err = s.ToggleTodo(ctx, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected snapshot to be unchanged, before %v after %v", before, after)
	}
}

func TestMemoryStore_SummaryCountsCompleted(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.CreateTodo(ctx, "task"); err != nil {
			t.Fatalf("CreateTodo failed: %v", err)
		}
	}
	if _, err := s.ToggleTodo(ctx, 1); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	sum, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.Completed != 1 || sum.Total != 3 {
		t.Fatalf("expected 1 of 3, got %d of %d", sum.Completed, sum.Total)
	}

	todos, _ := s.ListTodos(ctx)
	if sum.Total != len(todos) {
		t.Fatalf("expected total %d to match snapshot length %d", sum.Total, len(todos))
	}
	if sum.Completed < 0 || sum.Completed > sum.Total {
		t.Fatalf("summary out of bounds: %d of %d", sum.Completed, sum.Total)
	}
}

func TestMemoryStore_ListReturnsIndependentCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.CreateTodo(ctx, "original")

	first, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	first[0].Text = "mutated"
	first[0].Done = true

	second, err := s.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if second[0].Text != "original" || second[0].Done {
		t.Fatalf("expected internal state to be isolated from returned slice, got %+v", second[0])
	}
}

func TestMemoryStore_CreateAllowsEmptyText(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	todo, err := s.CreateTodo(ctx, "")
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}
	if todo.Text != "" {
		t.Errorf("expected empty text to be stored as-is, got %q", todo.Text)
	}
}

func TestMemoryStore_DoneContextFailsWithLockError(t *testing.T) {
	s := NewMemoryStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CreateTodo(ctx, "task")
	var lockErr *LockError
	if !errors.As(err, &lockErr) {
		t.Fatalf("expected LockError, got %v", err)
	}
	if lockErr.Op != "create" {
		t.Errorf("expected operation label create, got %s", lockErr.Op)
	}

	_, err = s.Summary(ctx)
	if !errors.As(err, &lockErr) {
		t.Fatalf("expected LockError, got %v", err)
	}
	if lockErr.Op != "summary" {
		t.Errorf("expected operation label summary, got %s", lockErr.Op)
	}

	todos, err := s.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected failed create to leave store empty, got %d todos", len(todos))
	}
}
