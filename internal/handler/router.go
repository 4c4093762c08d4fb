package handler

import (
	"net/http"

	"deck-diff/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"deck-diff"}`))
	}).Methods("GET")

	// Landing page
	router.HandleFunc("/", Index).Methods("GET")

	// Upload endpoint
	uploadHandler := NewUploadHandler(
		container.GetUploadService(),
		container.GetConfig().GetMaxFileSize(),
		container.GetLogger(),
	)
	router.HandleFunc("/api/upload", uploadHandler.Upload).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
