package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"

	"dailytodos/internal/models"
)

//go:embed templates
var templatesFS embed.FS

// Renderer turns todos and summaries into HTML fragments. It holds parsed
// templates and nothing else: the same input always yields the same bytes,
// and no method touches the store or the network.
type Renderer struct {
	templates *template.Template
}

// New parses the page and partial templates embedded with the package.
func New() (*Renderer, error) {
	tmpl := template.New("")

	patterns := []string{
		"templates/*.html",
		"templates/partials/*.html",
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(templatesFS, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			content, err := templatesFS.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", match, err)
			}

			name := filepath.Base(match)
			if _, err := tmpl.New(name).Parse(string(content)); err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Task renders the list-item fragment for one todo. The element id derives
// solely from the todo's id so a later response can replace this fragment.
func (r *Renderer) Task(todo models.Todo) ([]byte, error) {
	return r.execute("todo_item.html", todo)
}

// TaskList renders the item fragments for all todos in sequence order.
func (r *Renderer) TaskList(todos []models.Todo) ([]byte, error) {
	var buf bytes.Buffer
	for _, todo := range todos {
		item, err := r.Task(todo)
		if err != nil {
			return nil, err
		}
		buf.Write(item)
	}
	return buf.Bytes(), nil
}

// Summary renders the completed-of-total fragment.
func (r *Renderer) Summary(sum models.Summary) ([]byte, error) {
	return r.execute("statistic.html", sum)
}

// PageData holds data for the full page template.
type PageData struct {
	Title   string
	Todos   []models.Todo
	Summary models.Summary
}

// Page renders the full document: head, add form, summary, and todo list.
func (r *Renderer) Page(data PageData) ([]byte, error) {
	return r.execute("index.html", data)
}
