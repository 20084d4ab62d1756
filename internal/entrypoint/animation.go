package entrypoint

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/library/internal/animation"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/tasks"
)

var _ tasks.AnimationLoader = (*animation.Loader)(nil)

// animationFetcher runs the startup fetch of the animation descriptor and later refreshes,
// either through the task queue (with retries) or inline when tasks are disabled.
type animationFetcher struct {
	url        string
	loader     tasks.AnimationLoader
	taskClient *tasks.Client
	cancel     context.CancelFunc
	tempDir    string
}

func startAnimationFetcher(ctx context.Context, cfg *config.Config, loader tasks.AnimationLoader) (*animationFetcher, error) {
	f := &animationFetcher{url: cfg.Animation.URL, loader: loader}

	if cfg.Tasks.Enabled {
		if err := f.startTasks(ctx, cfg.Tasks, loader); err != nil {
			f.Close()
			return nil, err
		}
	}

	if f.url == "" {
		log.Printf("Animation URL not set, home view will have no animation")
		return f, nil
	}

	if f.taskClient != nil {
		if err := f.Refresh(ctx); err != nil {
			log.Printf("WARNING: failed to schedule animation fetch: %v", err)
		}
		return f, nil
	}

	go func() {
		if err := f.Refresh(ctx); err != nil {
			log.Printf("WARNING: animation unavailable: %v", err)
		}
	}()
	return f, nil
}

func (f *animationFetcher) startTasks(ctx context.Context, cfg config.Tasks, loader tasks.AnimationLoader) error {
	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dir, err := os.MkdirTemp("", "library-tasks-*")
		if err != nil {
			return fmt.Errorf("create tasks directory: %w", err)
		}
		f.tempDir = dir
		dbPath = filepath.Join(dir, "tasks.db")
	}

	taskCfg := tasks.DefaultConfig()
	if cfg.Workers > 0 {
		taskCfg.Workers = cfg.Workers
	}
	if cfg.ReleaseAfter > 0 {
		taskCfg.ReleaseAfter = cfg.ReleaseAfter
	}
	if cfg.CleanupInterval > 0 {
		taskCfg.CleanupInterval = cfg.CleanupInterval
	}

	client, err := tasks.NewClient(dbPath, taskCfg)
	if err != nil {
		return err
	}
	client.Register(tasks.NewFetchAnimationQueue(loader))

	var taskCtx context.Context
	taskCtx, f.cancel = context.WithCancel(ctx)
	go client.Start(taskCtx)

	f.taskClient = client
	return nil
}

// Refresh fetches the descriptor again. With the task queue it only enqueues.
func (f *animationFetcher) Refresh(ctx context.Context) error {
	if f.url == "" {
		return nil
	}
	if f.taskClient != nil {
		_, err := tasks.EnqueueAnimationFetch(f.taskClient, f.url)
		return err
	}
	return f.loader.Load(ctx, f.url)
}

// Stop waits for running tasks within the shutdown deadline.
func (f *animationFetcher) Stop(ctx context.Context) {
	if f.taskClient == nil {
		return
	}
	f.taskClient.Stop(ctx)
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *animationFetcher) Close() {
	if f.taskClient != nil {
		if err := f.taskClient.Close(); err != nil {
			log.Printf("Error closing task client: %v", err)
		}
	}
	if f.tempDir != "" {
		log.Printf("Cleaning up task queue data from %s", f.tempDir)
		os.RemoveAll(f.tempDir)
	}
}
