package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"dailytodos/internal/handlers"
	"dailytodos/internal/render"
	"dailytodos/internal/store"
)

//go:embed static/*
var staticFS embed.FS

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")

	// Initialize store
	s, err := openStore()
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer s.Close()

	// Parse templates
	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Initialize handlers
	h := handlers.New(s, renderer)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files
	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(staticSub))))

	// Routes
	r.Get("/", h.Home)
	r.Post("/add", h.Add)
	r.Post("/{id}/done", h.ToggleDone)
	r.Get("/statistic", h.Statistic)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting server on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openStore selects the store backend. The default is the in-memory store;
// STORE_DRIVER=sqlite opens a SQLite database at DB_PATH (":memory:" unless
// set, so state still lives only for the process lifetime by default).
func openStore() (store.Store, error) {
	driver := getEnv("STORE_DRIVER", "memory")
	switch driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "sqlite":
		return store.NewSQLiteStore(getEnv("DB_PATH", ":memory:"))
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
