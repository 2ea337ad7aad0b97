package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"storefront/api/internal/repository"
)

// Scheduler runs periodic maintenance. Its only job today clears reset token
// pairs that expired without being used.
type Scheduler struct {
	cron  *cron.Cron
	users *repository.UserRepository
	log   zerolog.Logger
}

func NewScheduler(users *repository.UserRepository, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		users: users,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.purgeResetTokens); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits up to five seconds for running jobs to finish.
func (s *Scheduler) Stop() {
	select {
	case <-s.cron.Stop().Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) purgeResetTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := s.users.PurgeExpiredResetTokens(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("purge reset tokens failed")
		return
	}
	if purged > 0 {
		s.log.Info().Int64("purged", purged).Msg("expired reset tokens cleared")
	}
}
