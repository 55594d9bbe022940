package cvdelivery

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/cv/model"
	"portfolio-backend/internal/cv/render"
	"portfolio-backend/internal/pdfconvert"
)

const (
	StrategyBrowserPDF  = "browser-pdf"
	StrategyHTMLTextPDF = "html-text-pdf"
	StrategyPlainText   = "plain-text"
)

// Outcome tags a strategy attempt.
type Outcome int

const (
	Success Outcome = iota
	Skip
	Fail
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Skip:
		return "skip"
	default:
		return "fail"
	}
}

// Result is the tagged outcome of one strategy.
type Result struct {
	Outcome  Outcome
	Artifact Artifact
	Err      error
}

func succeeded(a Artifact) Result { return Result{Outcome: Success, Artifact: a} }
func skipped(reason string) Result { return Result{Outcome: Skip, Err: errors.New(reason)} }
func failed(err error) Result      { return Result{Outcome: Fail, Err: err} }

// Job is the input shared by every strategy in one synthesis run.
type Job struct {
	Profile model.CvProfile
	target  *target
}

// NewJob prepares a synthesis run for p, locating its page through loc.
func NewJob(p model.CvProfile, loc Locator) *Job {
	return &Job{Profile: p, target: &target{locator: loc, path: p.Delivery.PagePath}}
}

// PageURL returns the resolved frontend page, probing on first use.
func (j *Job) PageURL(ctx context.Context) (string, bool) {
	return j.target.resolve(ctx)
}

// Strategy is one way of producing a CV artifact.
type Strategy interface {
	Name() string
	Format() string
	Attempt(ctx context.Context, job *Job) Result
}

// BrowserPDF prints the hosted CV page through the rendering service.
type BrowserPDF struct {
	Renderer pdfconvert.Renderer
}

func (BrowserPDF) Name() string   { return StrategyBrowserPDF }
func (BrowserPDF) Format() string { return FormatPDF }

func (s BrowserPDF) Attempt(ctx context.Context, job *Job) Result {
	pageURL, ok := job.PageURL(ctx)
	if !ok {
		return failed(errors.New("cv page unreachable"))
	}
	if s.Renderer == nil {
		return failed(pdfconvert.ErrNotConfigured)
	}
	data, err := s.Renderer.Render(ctx, pageURL, pdfconvert.CVLayout())
	if err != nil {
		return failed(err)
	}
	return succeeded(pdfArtifact(job.Profile, data, StrategyBrowserPDF))
}

// HTMLTextPDF wraps the visible text of the hosted page in a minimal PDF.
type HTMLTextPDF struct {
	Fetcher pdfconvert.PageFetcher
}

func (HTMLTextPDF) Name() string   { return StrategyHTMLTextPDF }
func (HTMLTextPDF) Format() string { return FormatPDF }

func (s HTMLTextPDF) Attempt(ctx context.Context, job *Job) Result {
	pageURL, ok := job.PageURL(ctx)
	if !ok {
		return skipped("no reachable cv page")
	}
	if s.Fetcher == nil {
		return skipped("no page fetcher")
	}
	data, err := pdfconvert.TextPDF(ctx, s.Fetcher, pageURL)
	if err != nil {
		return failed(err)
	}
	return succeeded(pdfArtifact(job.Profile, data, StrategyHTMLTextPDF))
}

// PlainText renders the profile as text. It is the terminal strategy.
type PlainText struct{}

func (PlainText) Name() string   { return StrategyPlainText }
func (PlainText) Format() string { return FormatText }

func (PlainText) Attempt(_ context.Context, job *Job) Result {
	text := render.Text(job.Profile)
	if text == "" {
		return failed(fmt.Errorf("empty text rendering for %q", job.Profile.ID))
	}
	return succeeded(textArtifact(job.Profile, text, StrategyPlainText))
}

// PDFOnly filters a chain down to the strategies that produce PDFs.
func PDFOnly(chain []Strategy) []Strategy {
	out := make([]Strategy, 0, len(chain))
	for _, s := range chain {
		if s.Format() == FormatPDF {
			out = append(out, s)
		}
	}
	return out
}
