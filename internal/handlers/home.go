package handlers

import (
	"net/http"

	"dailytodos/internal/render"
)

// Home renders the full page: add form, summary, and the todo list. The
// summary is derived from the same snapshot as the list, so the page makes
// a single store call.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.ListTodos(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	data := render.PageData{
		Title: "Daily todos",
		Todos: todos,
	}
	data.Summary.Total = len(todos)
	for _, todo := range todos {
		if todo.Done {
			data.Summary.Completed++
		}
	}

	body, err := h.renderer.Page(data)
	if err != nil {
		respondServerError(w, err)
		return
	}

	writeFragment(w, body)
}

// Statistic renders the summary fragment. The summary element on the full
// page re-fetches this route whenever a response signals changedTodos.
func (h *Handlers) Statistic(w http.ResponseWriter, r *http.Request) {
	sum, err := h.store.Summary(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	body, err := h.renderer.Summary(sum)
	if err != nil {
		respondServerError(w, err)
		return
	}

	writeFragment(w, body)
}
