package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentalspace-backend/internal/config"
	"dentalspace-backend/internal/handlers"
	"dentalspace-backend/internal/router"
	"dentalspace-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting DentalSpace chat backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Printf("✓ Environment variables loaded (%s)", cfg.Env)
	if !cfg.HasOpenAIKey() {
		log.Println("✗ OPENAI_API_KEY not set, chat requests will fail until it is configured")
	}

	// ──── Step 2: Initialize OpenAI Client ────
	openAIService := services.NewOpenAIService(cfg.OpenAIBaseURL)
	log.Printf("✓ OpenAI client initialized (%s)", services.DefaultModel)

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(openAIService, cfg.OpenAIAPIKey)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ DentalSpace chat backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
