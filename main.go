package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"wealthgenie/backend/handlers"
	"wealthgenie/backend/middleware"
	"wealthgenie/backend/services"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	logLevel, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)

	// Initialize Firebase Admin SDK
	if err := middleware.InitializeFirebase(); err != nil {
		log.Printf("Warning: Failed to initialize Firebase: %v", err)
		log.Println("Auth token verification will be disabled!")
	}

	// The data API holds the user's records; this service only renders them.
	dataURL := os.Getenv("DATA_API_URL")
	if dataURL == "" {
		dataURL = "http://localhost:8081"
	}
	exportSvc := services.NewExportService(services.NewDataClient(dataURL))
	exportHandler := handlers.NewExportHandler(exportSvc)

	// Create router
	r := mux.NewRouter()
	r.Use(middleware.EnableCORS)

	// Register routes with both direct paths and /api prefix to maintain
	// compatibility with the frontend proxy setup.
	registerRoutes(r, exportHandler)
	apiRouter := r.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, exportHandler)

	// Configure the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Starting server on port %s...", port)
	log.Fatal(srv.ListenAndServe())
}

// registerRoutes sets up all API routes
func registerRoutes(r *mux.Router, exportHandler *handlers.ExportHandler) {
	// Public routes (no auth required)
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")

	// Create a subrouter for authenticated routes
	protectedRouter := r.PathPrefix("").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware)

	protectedRouter.HandleFunc("/export", exportHandler.Export).Methods("POST", "OPTIONS")
}
