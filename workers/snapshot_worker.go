package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dota2-stats-server/services"
	"dota2-stats-server/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
)

// SnapshotWorker periodically publishes the current leaderboard as a JSON
// object to R2 so the companion website can serve it without hitting the
// API on every page view.
type SnapshotWorker struct {
	players  *services.PlayerService
	title    string
	interval time.Duration
}

func NewSnapshotWorker(players *services.PlayerService, title string, interval time.Duration) *SnapshotWorker {
	if title == "" {
		title = "Dota 2 Stats Leaderboard"
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SnapshotWorker{players: players, title: title, interval: interval}
}

// SnapshotKey is the R2 object key the worker publishes to.
func (w *SnapshotWorker) SnapshotKey() string {
	return "leaderboards/" + slug.Make(w.title) + ".json"
}

// Start schedules the snapshot job and blocks until ctx is cancelled.
func (w *SnapshotWorker) Start(ctx context.Context) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Snapshot] scheduler init failed: %v", err)
		return
	}

	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() { w.publish(ctx) }),
	)
	if err != nil {
		log.Printf("[Snapshot] job setup failed: %v", err)
		return
	}

	sched.Start()
	log.Printf("✅ Leaderboard snapshot worker running (every %s)", w.interval)

	<-ctx.Done()
	if err := sched.Shutdown(); err != nil {
		log.Printf("[Snapshot] scheduler shutdown error: %v", err)
	}
	log.Println("[Snapshot] worker stopped")
}

func (w *SnapshotWorker) publish(ctx context.Context) {
	entries, err := w.players.Leaderboard(ctx, services.MaxLeaderboardLimit)
	if err != nil {
		log.Printf("[Snapshot] leaderboard query failed: %v", err)
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"success":      true,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"leaderboard":  entries,
	})
	if err != nil {
		log.Printf("[Snapshot] marshal failed: %v", err)
		return
	}

	url, err := utils.UploadBytesToR2(payload, w.SnapshotKey(), "application/json")
	if err != nil {
		log.Printf("[Snapshot] upload failed: %v", err)
		return
	}
	log.Printf("✅ Leaderboard snapshot published: %s (%d entries)", url, len(entries))
}
