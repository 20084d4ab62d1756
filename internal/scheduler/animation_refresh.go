package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// RefreshFunc re-fetches the animation descriptor. The entrypoint passes either
// a task-queue enqueue or a direct load.
type RefreshFunc func(ctx context.Context) error

// AnimationRefreshScheduler periodically refreshes the home view animation.
type AnimationRefreshScheduler struct {
	schedule string
	refresh  RefreshFunc

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewAnimationRefreshScheduler(schedule string, refresh RefreshFunc) *AnimationRefreshScheduler {
	return &AnimationRefreshScheduler{
		schedule: schedule,
		refresh:  refresh,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start begins the scheduler. An empty schedule leaves it disabled.
func (s *AnimationRefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		log.Printf("[SCHEDULER] Animation refresh: disabled")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runRefresh(runCtx)
	})
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule animation refresh: %w", err)
	}
	s.entryID = entryID
	s.cancelFunc = cancel

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := GetNextRunTime(s.schedule, time.Now())
	log.Printf("[SCHEDULER] Animation refresh: started with schedule '%s' (%s). Next run: %v",
		s.schedule, GetCronDescription(s.schedule), nextRun)

	go func() {
		<-runCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running refresh to finish and stops the scheduler.
func (s *AnimationRefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cancelFunc()
	s.isRunning = false

	log.Printf("[SCHEDULER] Animation refresh: stopped")
}

func (s *AnimationRefreshScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next refresh will occur, or nil when stopped.
func (s *AnimationRefreshScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *AnimationRefreshScheduler) runRefresh(ctx context.Context) {
	start := time.Now()
	if err := s.refresh(ctx); err != nil {
		log.Printf("[SCHEDULER] Animation refresh failed: %v", err)
		return
	}
	log.Printf("[SCHEDULER] Animation refresh completed in %v", time.Since(start).Round(time.Millisecond))
}
