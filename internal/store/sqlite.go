package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"dailytodos/internal/models"
)

// SQLiteStore implements Store on a SQLite database. With the default
// ":memory:" path it holds state for the process lifetime only, like the
// memory store; pointing DB_PATH at a file is an operator choice.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at dbPath and ensures the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: keeps an in-memory database from being recreated per
	// connection and serializes operations the way the memory store does.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY,
		text TEXT NOT NULL DEFAULT '',
		done BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// begin starts the transaction that stands in for the store lock. Failure
// to begin (context done, connection unavailable) is the acquisition-failure
// class and carries the operation label.
func (s *SQLiteStore) begin(ctx context.Context, op string) (*sql.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &LockError{Op: op, Err: err}
	}
	return tx, nil
}

// CreateTodo inserts a todo with the next id and returns a copy of it.
// Ids start at 0 and grow by one per insert; todos are never deleted, so
// MAX(id)+1 never hands out a reused id.
func (s *SQLiteStore) CreateTodo(ctx context.Context, text string) (models.Todo, error) {
	tx, err := s.begin(ctx, "create")
	if err != nil {
		return models.Todo{}, err
	}
	defer tx.Rollback()

	var id uint64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id)+1, 0) FROM todos`).Scan(&id); err != nil {
		return models.Todo{}, fmt.Errorf("failed to allocate id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO todos (id, text, done) VALUES (?, ?, FALSE)`, id, text); err != nil {
		return models.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Todo{}, fmt.Errorf("failed to commit todo: %w", err)
	}

	return models.Todo{ID: id, Text: text}, nil
}

// ToggleTodo flips the done flag of the todo with the given id and returns
// a copy of the updated row, or ErrNotFound when no row matches.
func (s *SQLiteStore) ToggleTodo(ctx context.Context, id uint64) (models.Todo, error) {
	tx, err := s.begin(ctx, "toggle")
	if err != nil {
		return models.Todo{}, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE todos SET done = NOT done WHERE id = ?`, id)
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to toggle todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.Todo{}, ErrNotFound
	}

	todo := models.Todo{}
	err = tx.QueryRowContext(ctx, `SELECT id, text, done FROM todos WHERE id = ?`, id).
		Scan(&todo.ID, &todo.Text, &todo.Done)
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Todo{}, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return todo, nil
}

// ListTodos returns all todos in insertion (id) order.
func (s *SQLiteStore) ListTodos(ctx context.Context) ([]models.Todo, error) {
	tx, err := s.begin(ctx, "list")
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id, text, done FROM todos ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Done); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, tx.Commit()
}

// Summary counts completed and total todos in one query.
func (s *SQLiteStore) Summary(ctx context.Context) (models.Summary, error) {
	tx, err := s.begin(ctx, "summary")
	if err != nil {
		return models.Summary{}, err
	}
	defer tx.Rollback()

	sum := models.Summary{}
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(done), 0) FROM todos`).
		Scan(&sum.Total, &sum.Completed)
	if err != nil {
		return models.Summary{}, fmt.Errorf("failed to compute summary: %w", err)
	}

	return sum, tx.Commit()
}
