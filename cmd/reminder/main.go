// Command reminder sends one round of open-game reminder emails and exits.
// It is meant to run from cron as an alternative to the server's built-in
// reminder ticker.
package main

import (
	"context"
	"log"
	"time"

	"hangman/internal/config"
	"hangman/internal/database"
	"hangman/internal/repository"
	"hangman/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	reminderService := service.NewReminderService(userRepo, gameRepo, emailService)

	sent, err := reminderService.SendReminders(ctx)
	if err != nil {
		log.Fatalf("Failed to send reminders: %v", err)
	}

	log.Printf("Sent %d reminder emails", sent)
}
