// Package web serves the barcode correction API over HTTP.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/seqspell/internal/barcode"
	"github.com/seqspell/internal/web/handlers"
	"github.com/seqspell/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	set        *barcode.Set
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance. The barcode set is built
// once from the configured whitelist; lookups after that are pure reads,
// so one shared set serves all requests without locking.
func NewServer(config *Config) (*Server, error) {
	set, err := barcode.Load(config.Whitelist.Path, config.Whitelist.MaxDist, config.Whitelist.PartitionWidth)
	if err != nil {
		return nil, fmt.Errorf("loading whitelist: %w", err)
	}

	server := &Server{
		config: config,
		set:    set,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	lookupHandler := &handlers.LookupHandler{Set: s.set}
	statsHandler := &handlers.StatsHandler{Set: s.set}

	// API routes
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/lookup", lookupHandler.Lookup).Methods("GET")
	api.HandleFunc("/lookup/batch", lookupHandler.LookupBatch).Methods("POST")
	api.HandleFunc("/scan", lookupHandler.Scan).Methods("GET")
	api.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods("GET")

	// Apply middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Start starts the web server and blocks until it is signalled to stop.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}
