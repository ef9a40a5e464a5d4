package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dailytodos/internal/render"
	"dailytodos/internal/store"
)

// triggerHeader is the htmx response header carrying the change signal;
// changedTodos is the event name. Any element on the page that declares
// interest in the event (the summary does) re-fetches itself when a
// response carries it.
const (
	triggerHeader = "HX-Trigger"
	changedTodos  = "changedTodos"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store    store.Store
	renderer *render.Renderer
}

// New creates a new Handlers instance.
func New(s store.Store, r *render.Renderer) *Handlers {
	return &Handlers{
		store:    s,
		renderer: r,
	}
}

// parseID extracts and parses an unsigned integer ID from URL parameters.
func parseID(r *http.Request, param string) (uint64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseUint(idStr, 10, 64)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondStoreError maps store failures onto HTTP responses. A lock
// acquisition failure names the operation that could not lock the store;
// anything else is a generic internal error.
func respondStoreError(w http.ResponseWriter, err error) {
	var lockErr *store.LockError
	if errors.As(err, &lockErr) {
		log.Printf("store lock failure: %v", lockErr)
		respondError(w, http.StatusInternalServerError, "store lock failure: "+lockErr.Op)
		return
	}
	respondServerError(w, err)
}

// writeFragment writes rendered markup with a 200 status.
func writeFragment(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
