package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	cvCacheHitsTotal     atomic.Uint64
	cvCacheMissesTotal   atomic.Uint64
	cvCacheWriteFailures atomic.Uint64
	contactCreatedTotal  atomic.Uint64
	contactFailedTotal   atomic.Uint64
	githubFetchTotal     atomic.Uint64
	githubFetchFailures  atomic.Uint64
	notifySentTotal      atomic.Uint64
	notifyFailedTotal    atomic.Uint64
	notifyDroppedTotal   atomic.Uint64
	cvStrategyOutcomes   = newLabeledCounter()
	cvRenderDuration     = newHistogram([]float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000})
)

// IncCVCacheHit counts a download served from the object store.
func IncCVCacheHit() { cvCacheHitsTotal.Add(1) }

// IncCVCacheMiss counts a download that had to synthesize a new artifact.
func IncCVCacheMiss() { cvCacheMissesTotal.Add(1) }

// IncCVCacheWriteFailure counts a failed best-effort cache write.
func IncCVCacheWriteFailure() { cvCacheWriteFailures.Add(1) }

// IncCVStrategy counts a render strategy outcome such as ("browser-pdf", "fail").
func IncCVStrategy(strategy, outcome string) {
	cvStrategyOutcomes.Inc(fmt.Sprintf(`strategy="%s",outcome="%s"`, strategy, outcome))
}

// ObserveCVRenderDurationMs records a synthesis duration in milliseconds.
func ObserveCVRenderDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	cvRenderDuration.Observe(value)
}

// IncContactCreated counts a stored contact message.
func IncContactCreated() { contactCreatedTotal.Add(1) }

// IncContactFailed counts a contact message the store rejected.
func IncContactFailed() { contactFailedTotal.Add(1) }

// IncGitHubFetch counts a project fetch against the GitHub API.
func IncGitHubFetch() { githubFetchTotal.Add(1) }

// IncGitHubFetchFailure counts a failed project fetch.
func IncGitHubFetchFailure() { githubFetchFailures.Add(1) }

// IncNotifySent counts a delivered contact notification email.
func IncNotifySent() { notifySentTotal.Add(1) }

// IncNotifyFailed counts a notification that could not be delivered.
func IncNotifyFailed() { notifyFailedTotal.Add(1) }

// IncNotifyDropped counts a queue message deleted because it can never be processed.
func IncNotifyDropped() { notifyDroppedTotal.Add(1) }

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "cv_cache_hits_total", "CV downloads served from the object store", cvCacheHitsTotal.Load())
	writeCounter(&buf, "cv_cache_misses_total", "CV downloads that required synthesis", cvCacheMissesTotal.Load())
	writeCounter(&buf, "cv_cache_write_failures_total", "Failed CV cache writes", cvCacheWriteFailures.Load())
	writeLabeledCounter(&buf, "cv_strategy_outcomes_total", "CV render strategy outcomes", cvStrategyOutcomes.Snapshot())
	writeHistogram(&buf, "cv_render_duration_ms", "CV synthesis duration in milliseconds", cvRenderDuration.Snapshot())
	writeCounter(&buf, "contact_messages_created_total", "Contact messages stored", contactCreatedTotal.Load())
	writeCounter(&buf, "contact_messages_failed_total", "Contact messages rejected by the store", contactFailedTotal.Load())
	writeCounter(&buf, "github_fetch_total", "GitHub project fetches", githubFetchTotal.Load())
	writeCounter(&buf, "github_fetch_failures_total", "Failed GitHub project fetches", githubFetchFailures.Load())
	writeCounter(&buf, "contact_notifications_sent_total", "Contact notification emails sent", notifySentTotal.Load())
	writeCounter(&buf, "contact_notifications_failed_total", "Contact notification emails that failed", notifyFailedTotal.Load())
	writeCounter(&buf, "contact_notifications_dropped_total", "Unprocessable notification messages deleted", notifyDroppedTotal.Load())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newLabeledCounter() *labeledCounter {
	return &labeledCounter{values: make(map[string]uint64)}
}

func (l *labeledCounter) Inc(labels string) {
	l.mu.Lock()
	l.values[labels]++
	l.mu.Unlock()
}

func (l *labeledCounter) Snapshot() map[string]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]uint64, len(l.values))
	for k, v := range l.values {
		out[k] = v
	}
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeLabeledCounter(buf *bytes.Buffer, name, help string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s} %d\n", name, k, values[k])
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
