package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hangman/internal/config"
	"hangman/internal/database"
	"hangman/internal/game"
	"hangman/internal/handlers"
	"hangman/internal/repository"
	"hangman/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize services
	words := game.NewStaticWordSource()
	gameService := service.NewGameService(userRepo, gameRepo, scoreRepo, transactionRepo, words)
	rankingService := service.NewRankingService(userRepo, gameRepo, scoreRepo)

	emailService, err := service.NewEmailService(context.Background(), cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	reminderService := service.NewReminderService(userRepo, gameRepo, emailService)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(gameService, rankingService)
	gameHandler := handlers.NewGameHandler(gameService)
	scoreHandler := handlers.NewScoreHandler(gameService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", userHandler.CreateUser)
	mux.HandleFunc("GET /api/rankings", userHandler.Rankings)

	mux.HandleFunc("POST /api/games", gameHandler.NewGame)
	mux.HandleFunc("GET /api/games/{gameKey}", gameHandler.GetGame)
	mux.HandleFunc("PUT /api/games/{gameKey}/guess", gameHandler.MakeGuess)
	mux.HandleFunc("PUT /api/games/{gameKey}/cancel", gameHandler.CancelGame)
	mux.HandleFunc("GET /api/games/{gameKey}/history", gameHandler.GameHistory)
	mux.HandleFunc("GET /api/users/{userName}/games", gameHandler.UserGames)

	mux.HandleFunc("GET /api/scores", scoreHandler.Scores)
	mux.HandleFunc("GET /api/scores/top", scoreHandler.TopScores)
	mux.HandleFunc("GET /api/users/{userName}/scores", scoreHandler.UserScores)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background reminder loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runReminders(ctx, reminderService, cfg.ReminderInterval)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// runReminders periodically emails users about their open games
func runReminders(ctx context.Context, reminders *service.ReminderService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := reminders.SendReminders(ctx)
			if err != nil {
				log.Printf("Error sending reminders: %v", err)
			} else if sent > 0 {
				log.Printf("Sent %d reminder emails", sent)
			}
		}
	}
}
