package notification

import (
	"FreshTrack-Backend/pkg/user"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const DefaultCheckInterval = 60 * time.Second

// Scheduler re-runs the expiry eligibility check on a fixed interval for
// every user with notifications enabled. Ticks are fire-and-forget; an
// overlapping or repeated run is harmless because the check is idempotent.
type Scheduler struct {
	notificationService NotificationService
	userRepository      user.UserRepository
	interval            time.Duration
}

func NewScheduler(notificationService NotificationService, userRepository user.UserRepository, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Scheduler{
		notificationService: notificationService,
		userRepository:      userRepository,
		interval:            interval,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	userIDs, err := s.userRepository.GetNotifiableUserIDs(ctx)
	if err != nil {
		log.Errorf("expiry check: listing users failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		if _, err := s.notificationService.RunExpiryCheck(ctx, userID); err != nil {
			log.Errorf("expiry check for user %s failed: %v", userID, err)
		}
	}
}
