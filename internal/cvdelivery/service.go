package cvdelivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/cv/model"
	"portfolio-backend/internal/cv/render"
	"portfolio-backend/internal/pdfconvert"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/pdfdoc"
	"portfolio-backend/internal/shared/storage/object"
	"portfolio-backend/internal/shared/telemetry"
)

// Service serves CV artifacts from the object store, synthesizing and caching
// them on a miss.
type Service struct {
	Store   object.ObjectStore
	Locator Locator
	// Chain is evaluated in order until a strategy succeeds.
	Chain []Strategy
}

// NewService wires the default chain: browser-pdf, html-text-pdf, plain-text.
func NewService(store object.ObjectStore, renderer pdfconvert.Renderer, fetcher pdfconvert.PageFetcher, baseURLs []string) *Service {
	return &Service{
		Store:   store,
		Locator: Locator{BaseURLs: baseURLs, Fetcher: fetcher},
		Chain: []Strategy{
			BrowserPDF{Renderer: renderer},
			HTMLTextPDF{Fetcher: fetcher},
			PlainText{},
		},
	}
}

// UploadResult acknowledges a forced regeneration.
type UploadResult struct {
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	Strategy string `json:"strategy"`
}

// Download returns the cached PDF when present, otherwise synthesizes one with
// the full chain and caches it. A plain-text artifact is never cached.
func (s *Service) Download(ctx context.Context, p model.CvProfile) (Artifact, error) {
	key := p.Delivery.StorageName
	if cached, ok := s.readCache(ctx, key); ok {
		metrics.IncCVCacheHit()
		return pdfArtifact(p, cached, SourceCache), nil
	}
	metrics.IncCVCacheMiss()

	artifact, err := s.synthesize(ctx, p, s.Chain)
	if err != nil {
		return Artifact{}, err
	}
	if artifact.Format == FormatPDF {
		s.persist(ctx, key, artifact)
	}
	return artifact, nil
}

// Preview renders the profile as plain text.
func (s *Service) Preview(p model.CvProfile) string {
	return render.Text(p)
}

// Upload regenerates the PDF with the PDF strategies only, bypassing the cache,
// and overwrites the stored artifact.
func (s *Service) Upload(ctx context.Context, p model.CvProfile) (UploadResult, error) {
	artifact, err := s.synthesize(ctx, p, PDFOnly(s.Chain))
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", ErrPDFUnavailable, err)
	}
	if s.Store == nil {
		return UploadResult{}, fmt.Errorf("%w: object store not configured", ErrStoreWrite)
	}
	key := p.Delivery.StorageName
	size, err := s.Store.SaveWithKey(ctx, key, artifact.ContentType, bytes.NewReader(artifact.Data))
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	telemetry.Info("cv.upload.stored", map[string]any{"cv_type": p.ID, "key": key, "size": size, "strategy": artifact.Source})
	return UploadResult{Key: key, Size: size, Strategy: artifact.Source}, nil
}

func (s *Service) readCache(ctx context.Context, key string) ([]byte, bool) {
	if s.Store == nil {
		return nil, false
	}
	data, err := object.ReadAll(ctx, s.Store, key)
	if err != nil {
		if !errors.Is(err, object.ErrNotFound) {
			telemetry.Warn("cv.cache.read_failed", map[string]any{"key": key, "error": err.Error()})
		}
		return nil, false
	}
	if !pdfdoc.HasMagic(data) {
		telemetry.Warn("cv.cache.invalid", map[string]any{"key": key, "size": len(data)})
		return nil, false
	}
	return data, true
}

func (s *Service) persist(ctx context.Context, key string, a Artifact) {
	if s.Store == nil {
		return
	}
	if _, err := s.Store.SaveWithKey(ctx, key, a.ContentType, bytes.NewReader(a.Data)); err != nil {
		metrics.IncCVCacheWriteFailure()
		telemetry.Warn("cv.cache.write_failed", map[string]any{"key": key, "strategy": a.Source, "error": err.Error()})
	}
}

func (s *Service) synthesize(ctx context.Context, p model.CvProfile, chain []Strategy) (Artifact, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveCVRenderDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	job := NewJob(p, s.Locator)
	var reasons []string
	for _, strategy := range chain {
		res := strategy.Attempt(ctx, job)
		metrics.IncCVStrategy(strategy.Name(), res.Outcome.String())

		fields := map[string]any{"cv_type": p.ID, "strategy": strategy.Name(), "outcome": res.Outcome.String()}
		if res.Err != nil {
			fields["error"] = res.Err.Error()
		}
		if res.Outcome == Success {
			telemetry.Info("cv.strategy", fields)
			return res.Artifact, nil
		}
		telemetry.Warn("cv.strategy", fields)
		reasons = append(reasons, strategy.Name()+": "+errString(res.Err))
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
	}
	if len(reasons) == 0 {
		return Artifact{}, fmt.Errorf("%w: empty strategy chain", ErrExhausted)
	}
	return Artifact{}, fmt.Errorf("%w: %s", ErrExhausted, strings.Join(reasons, "; "))
}

func errString(err error) string {
	if err == nil {
		return "unknown"
	}
	return err.Error()
}
