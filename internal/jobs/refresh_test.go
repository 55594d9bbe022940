package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/cv/model"
	"portfolio-backend/internal/cvdelivery"
)

type fakeUploader struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeUploader) Upload(_ context.Context, p model.CvProfile) (cvdelivery.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, p.ID)
	if f.fail[p.ID] {
		return cvdelivery.UploadResult{}, errors.New("render down")
	}
	return cvdelivery.UploadResult{Key: p.ID + "-cv.pdf", Strategy: cvdelivery.StrategyBrowserPDF}, nil
}

func (f *fakeUploader) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func profiles() []model.CvProfile {
	return []model.CvProfile{{ID: "manish"}, {ID: "omkar"}}
}

func TestRefreshAllContinuesAfterFailure(t *testing.T) {
	up := &fakeUploader{fail: map[string]bool{"manish": true}}

	n := RefreshAll(context.Background(), up, profiles())

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"manish", "omkar"}, up.calls)
}

func TestScheduleCVRefreshRejectsBadSchedule(t *testing.T) {
	_, err := ScheduleCVRefresh(context.Background(), "every tuesday-ish", &fakeUploader{}, profiles)
	assert.Error(t, err)

	_, err = ScheduleCVRefresh(context.Background(), "  ", &fakeUploader{}, profiles)
	assert.Error(t, err)
}

func TestScheduleCVRefreshRuns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	up := &fakeUploader{}

	c, err := ScheduleCVRefresh(ctx, "@every 1s", up, profiles)
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)

	assert.Eventually(t, func() bool { return up.count() >= 2 }, 3*time.Second, 50*time.Millisecond)
}
