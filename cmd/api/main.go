package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dvloznov/voice-ledger/internal/api/handlers"
	"github.com/dvloznov/voice-ledger/internal/api/middleware"
	"github.com/dvloznov/voice-ledger/internal/logger"
	"github.com/dvloznov/voice-ledger/internal/parser"
	"github.com/dvloznov/voice-ledger/internal/sessions"
	"github.com/dvloznov/voice-ledger/internal/speech"
)

func main() {
	// Parse command-line flags
	var (
		port    = flag.String("port", envOr("PORT", "8080"), "HTTP server port (or set PORT env)")
		workers = flag.Int("workers", 4, "Number of session workers")
	)
	flag.Parse()

	// Initialize logger
	log := logger.New()

	ctx := context.Background()
	ctx = logger.WithContext(ctx, log)

	// Initialize the transaction parser
	txParser := parser.New()

	// Initialize speech recognition. Session endpoints degrade gracefully
	// when no credentials are available; text parsing keeps working.
	var recognizer speech.Recognizer
	if g, err := speech.NewGoogleRecognizer(ctx); err != nil {
		log.Warn().Err(err).Msg("No speech credentials configured - audio sessions will be disabled")
	} else {
		recognizer = g
	}

	// Initialize session infrastructure
	sessionStore := sessions.NewInMemoryStore()
	sessionQueue := sessions.NewQueue(sessionStore, 100, *workers)

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Session handler: transcribe the clip, then parse the transcript
	sessionHandler := func(ctx context.Context, session *sessions.Session) error {
		if recognizer == nil {
			return fmt.Errorf("speech recognition is not available")
		}

		transcript, err := recognizer.Recognize(ctx, session.Audio, session.Language)
		if err != nil {
			return err
		}
		session.Transcript = transcript

		tx, err := txParser.ParseWithCategories(transcript, session.Categories)
		if err != nil {
			return err
		}
		session.Transaction = tx
		return nil
	}

	// Start session workers in background
	go func() {
		log.Info().Int("workers", *workers).Msg("Starting session workers")
		if err := sessionQueue.Start(workerCtx, sessionHandler); err != nil {
			log.Error().Err(err).Msg("Session workers stopped with error")
		}
	}()

	// Initialize handlers
	parseHandler := handlers.NewParseHandler(txParser, log)
	categoriesHandler := handlers.NewCategoriesHandler(log)

	var publisher sessions.Publisher
	if recognizer != nil {
		publisher = sessionQueue
	}
	sessionsHandler := handlers.NewSessionsHandler(sessionStore, publisher, log)

	// Create router
	mux := http.NewServeMux()

	mux.HandleFunc("/api/parse", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			parseHandler.Parse(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			sessionsHandler.CreateSession(w, r)
		case http.MethodGet:
			sessionsHandler.ListSessions(w, r)
		default:
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/sessions/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			sessionID := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
			if sessionID == "" {
				middleware.WriteError(w, http.StatusBadRequest, "Session ID is required")
				return
			}
			sessionsHandler.GetSession(w, r, sessionID)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			categoriesHandler.ListCategories(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":         "healthy",
			"speech_enabled": recognizer != nil,
			"time":           time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", *port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	cancelWorker()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the session queue and wait for in-flight sessions
	if err := sessionQueue.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping session queue")
	}

	log.Info().Msg("Server exited")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
