package handlers

import (
	"errors"
	"net/http"

	"dailytodos/internal/store"
)

// Add creates a todo from the submitted form and returns its fragment.
// A form without the prompt field is a client error; an empty value is
// accepted as-is.
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	if !r.PostForm.Has("prompt") {
		respondError(w, http.StatusBadRequest, "missing prompt field")
		return
	}

	todo, err := h.store.CreateTodo(r.Context(), r.PostForm.Get("prompt"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	body, err := h.renderer.Task(todo)
	if err != nil {
		respondServerError(w, err)
		return
	}

	w.Header().Set(triggerHeader, changedTodos)
	writeFragment(w, body)
}

// ToggleDone flips the done state of the todo named in the path and returns
// its updated fragment. An unknown id changed nothing, so it answers 204
// with no body and no change signal.
func (h *Handlers) ToggleDone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	todo, err := h.store.ToggleTodo(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}

	body, err := h.renderer.Task(todo)
	if err != nil {
		respondServerError(w, err)
		return
	}

	w.Header().Set(triggerHeader, changedTodos)
	writeFragment(w, body)
}
