package service

import (
	"context"
	"log"
)

// EmailSender is the slice of EmailService the reminder job needs; tests
// substitute a recording fake.
type EmailSender interface {
	IsEnabled() bool
	SendReminderEmail(ctx context.Context, toEmail, toName string, openGames int) error
}

// ReminderService emails users who have an address on file and at least one
// game still in play. It runs from the server's ticker and from the
// one-shot reminder command.
type ReminderService struct {
	users UserStore
	games GameStore
	email EmailSender
}

// NewReminderService creates a new reminder service
func NewReminderService(users UserStore, games GameStore, email EmailSender) *ReminderService {
	return &ReminderService{users: users, games: games, email: email}
}

// SendReminders sends one reminder per user with open games and returns the
// number of emails sent. Per-user failures are logged and skipped so one bad
// address cannot block the rest of the run.
func (s *ReminderService) SendReminders(ctx context.Context) (int, error) {
	if !s.email.IsEnabled() {
		log.Println("Reminders skipped: email service disabled")
		return 0, nil
	}

	users, err := s.users.ListUsersWithEmail()
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, user := range users {
		openGames, err := s.games.CountOpenGamesByUser(user.ID)
		if err != nil {
			log.Printf("Failed to count open games for %s: %v", user.Name, err)
			continue
		}
		if openGames == 0 {
			continue
		}

		if err := s.email.SendReminderEmail(ctx, user.Email, user.Name, openGames); err != nil {
			log.Printf("Failed to send reminder to %s: %v", user.Name, err)
			continue
		}
		sent++
	}

	return sent, nil
}
