package extraction

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/ai"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/chunk"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/core"
)

// ProgressFunc receives progress updates during a run: once after each
// completed segment with (completed, total), plus one terminal call with
// (total, total) when the run finishes. Purely observational; it has no
// effect on the run's outcome.
type ProgressFunc func(completed, total int)

// Result is the output of one pipeline run.
type Result struct {
	// Aggregated holds the successful segments' response payloads joined
	// by line breaks, in segment order. Failed segments are omitted here
	// and recorded in the Report.
	Aggregated string

	// Report summarizes the run for the caller.
	Report core.RunReport
}

// Pipeline drives the chunker and the extraction client across a whole
// document, applying the partial-failure policy: a segment whose
// extraction fails is skipped and reported, never retried, and never
// aborts the run.
type Pipeline struct {
	extractor ai.EntityExtractor
	chunkSize int
	limit     chunk.Limit
	pool      *ants.Pool // nil when running sequentially
	progress  ProgressFunc
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithChunkSize sets the segment length in characters.
// Default is chunk.DefaultSize.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return core.ErrInvalidChunkSize
		}
		p.chunkSize = size
		return nil
	}
}

// WithLimit sets the input cap applied before chunking.
// Default is chunk.DefaultLimit().
func WithLimit(limit chunk.Limit) Option {
	return func(p *Pipeline) error {
		if err := limit.Validate(); err != nil {
			return err
		}
		p.limit = limit
		return nil
	}
}

// WithWorkers enables concurrent segment extraction with a bounded worker
// pool of the given size. Result order is always reconstructed by segment
// index before aggregation, so the output is identical to a sequential
// run regardless of completion order. Sizes below 2 keep the default
// strictly sequential execution.
func WithWorkers(size int) Option {
	return func(p *Pipeline) error {
		if p.pool != nil {
			p.pool.Release()
			p.pool = nil
		}
		if size < 2 {
			return nil
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Pipeline) error {
		p.progress = fn
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a pipeline around the given extraction client.
func NewPipeline(extractor ai.EntityExtractor, opts ...Option) (*Pipeline, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	p := &Pipeline{
		extractor: extractor,
		chunkSize: chunk.DefaultSize,
		limit:     chunk.DefaultLimit(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Run processes the full document text: caps it, chunks it, extracts
// every segment in index order, and aggregates the successful results.
//
// An error is returned only for pre-run conditions (oversized input under
// the fail policy, a context that is already done); per-segment failures
// are recorded in the report and never surface as a run-level error. The
// caller always receives whatever partial result could be built.
func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, truncated, err := p.limit.Apply(text)
	if err != nil {
		return nil, err
	}
	if truncated {
		p.logger.Warn("input truncated before chunking",
			"limit", p.limit.MaxChars)
	}

	segments, err := chunk.Split(text, p.chunkSize)
	if err != nil {
		return nil, err
	}

	total := len(segments)
	p.logger.Info("starting extraction run",
		"fingerprint", core.Fingerprint(text),
		"segments", total,
		"chunkSize", p.chunkSize,
		"truncated", truncated)

	results := make([]core.SegmentResult, total)
	if p.pool != nil && total > 1 {
		p.runConcurrent(ctx, segments, results)
	} else {
		p.runSequential(ctx, segments, results)
	}

	report := core.RunReport{
		Fingerprint: core.Fingerprint(text),
		Segments:    total,
		Truncated:   truncated,
	}

	// Aggregate in segment order; completion order is irrelevant here.
	lines := make([]string, 0, total)
	for _, r := range results {
		if !r.Succeeded() {
			report.Skipped = append(report.Skipped, r.Index)
			report.Failures = append(report.Failures, core.SegmentFailure{
				Index: r.Index,
				Cause: r.Err.Error(),
			})
			continue
		}
		lines = append(lines, r.Text)
	}
	report.Succeeded = total - len(report.Skipped)

	p.notify(total, total)
	p.logger.Info("extraction run finished",
		"succeeded", report.Succeeded,
		"skipped", len(report.Skipped))

	return &Result{
		Aggregated: strings.Join(lines, "\n"),
		Report:     report,
	}, nil
}

// runSequential issues one extraction call at a time, in segment order.
func (p *Pipeline) runSequential(ctx context.Context, segments []core.Segment, results []core.SegmentResult) {
	for i, segment := range segments {
		results[i] = p.extractSegment(ctx, segment)
		p.notify(i+1, len(segments))
	}
}

// runConcurrent fans the segments out over the worker pool. Results land
// in their index slot, so downstream aggregation sees document order no
// matter which segment finishes first.
func (p *Pipeline) runConcurrent(ctx context.Context, segments []core.Segment, results []core.SegmentResult) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)

	for i, segment := range segments {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			result := p.extractSegment(ctx, segment)

			mu.Lock()
			results[i] = result
			completed++
			p.notify(completed, len(segments))
			mu.Unlock()
		})
		if submitErr != nil {
			// Pool rejected the task (e.g. released mid-run); record the
			// segment as skipped like any other failure.
			mu.Lock()
			results[i] = core.SegmentResult{Index: segment.Index, Err: submitErr}
			completed++
			p.notify(completed, len(segments))
			mu.Unlock()
			wg.Done()
		}
	}

	wg.Wait()
}

// extractSegment performs one extraction call and wraps the outcome.
func (p *Pipeline) extractSegment(ctx context.Context, segment core.Segment) core.SegmentResult {
	text, err := p.extractor.Extract(ctx, segment)
	if err != nil {
		p.logger.Warn("segment skipped",
			"segment", segment.Index,
			"total", segment.Total,
			"err", err)
		return core.SegmentResult{Index: segment.Index, Err: err}
	}
	return core.SegmentResult{Index: segment.Index, Text: text}
}

func (p *Pipeline) notify(completed, total int) {
	if p.progress != nil {
		p.progress(completed, total)
	}
}

// Release frees the worker pool, if any. The pipeline should not be used
// after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
		p.pool = nil
	}
}
