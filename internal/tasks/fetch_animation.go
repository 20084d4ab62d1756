package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// AnimationLoader fetches the animation descriptor and keeps it for the home view.
type AnimationLoader interface {
	Load(ctx context.Context, url string) error
}

// FetchAnimationTask downloads the home view animation.
type FetchAnimationTask struct {
	URL string `json:"url"`
}

// Config returns the queue configuration for animation fetches.
// Failed attempts are retried; after the last one the home view goes without animation.
func (t FetchAnimationTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "fetch_animation",
		MaxAttempts: 3,
		Backoff:     10 * time.Second,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: true,
		},
	}
}

// FetchAnimationProcessor creates a processor function for FetchAnimationTask.
func FetchAnimationProcessor(loader AnimationLoader) backlite.QueueProcessor[FetchAnimationTask] {
	return func(ctx context.Context, task FetchAnimationTask) error {
		if loader == nil {
			return fmt.Errorf("animation loader not configured")
		}
		if task.URL == "" {
			log.Printf("[TASK] No animation URL configured, skipping fetch")
			return nil
		}

		if err := loader.Load(ctx, task.URL); err != nil {
			return fmt.Errorf("load animation from %s: %w", task.URL, err)
		}

		log.Printf("[TASK] Animation loaded from %s", task.URL)
		return nil
	}
}

func NewFetchAnimationQueue(loader AnimationLoader) backlite.Queue {
	return backlite.NewQueue(FetchAnimationProcessor(loader))
}

// EnqueueAnimationFetch schedules a fetch of the animation at url.
func EnqueueAnimationFetch(client *Client, url string) (string, error) {
	ids, err := client.Add(FetchAnimationTask{URL: url}).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue animation fetch: %w", err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("enqueue animation fetch: no task id returned")
	}
	return ids[0], nil
}
