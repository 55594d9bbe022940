package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"portfolio-backend/internal/cv/model"
	"portfolio-backend/internal/cvdelivery"
	"portfolio-backend/internal/shared/telemetry"
)

const refreshTimeout = 5 * time.Minute

// Uploader regenerates and stores a CV artifact.
type Uploader interface {
	Upload(ctx context.Context, p model.CvProfile) (cvdelivery.UploadResult, error)
}

// RefreshAll regenerates every profile. It keeps going after a failure and
// returns the number of profiles refreshed.
func RefreshAll(ctx context.Context, up Uploader, profiles []model.CvProfile) int {
	refreshed := 0
	for _, p := range profiles {
		res, err := up.Upload(ctx, p)
		if err != nil {
			telemetry.Error("cv.refresh.failed", map[string]any{"cv_type": p.ID, "error": err.Error()})
			continue
		}
		refreshed++
		telemetry.Info("cv.refresh.stored", map[string]any{"cv_type": p.ID, "key": res.Key, "strategy": res.Strategy})
	}
	return refreshed
}

// ScheduleCVRefresh registers a cron job that refreshes every cached CV on
// schedule. The scheduler stops when ctx is done.
func ScheduleCVRefresh(ctx context.Context, schedule string, up Uploader, profiles func() []model.CvProfile) (*cron.Cron, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return nil, fmt.Errorf("empty cv refresh schedule")
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		runCtx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		list := profiles()
		n := RefreshAll(runCtx, up, list)
		telemetry.Info("cv.refresh.completed", map[string]any{"refreshed": n, "total": len(list)})
	})
	if err != nil {
		return nil, fmt.Errorf("parse cv refresh schedule %q: %w", schedule, err)
	}
	c.Start()
	telemetry.Info("cv.refresh.scheduled", map[string]any{"schedule": schedule})

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return c, nil
}
