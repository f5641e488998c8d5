// Package lifecycle owns the comparison record's status transitions:
// submitted -> processing -> completed | failed, with explicit regeneration
// resetting to processing. It coordinates document resolution, extraction,
// normalization, and aggregation, and publishes every post-transition
// record exactly once after it is persisted.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/aggregate"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/docs"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
	"github.com/harshmriduhash/iq-procure-assist/internal/normalize"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
)

// Publisher is the half of the change feed the controller needs.
type Publisher interface {
	Publish(rec *entity.Comparison)
}

// Config holds the controller's policy knobs.
type Config struct {
	// StaleClaimAfter is how old a processing claim must be before a new
	// Advance/Regenerate call may override it. Without this escape hatch a
	// crashed extraction locks the record permanently.
	StaleClaimAfter time.Duration
}

type Controller struct {
	logger    *slog.Logger
	cfg       Config
	repo      repository.ComparisonRepository
	source    docs.Source
	extractor llm.PriceExtractor
	publisher Publisher
}

func NewController(
	logger *slog.Logger,
	cfg Config,
	repo repository.ComparisonRepository,
	source docs.Source,
	extractor llm.PriceExtractor,
	publisher Publisher,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.StaleClaimAfter <= 0 {
		cfg.StaleClaimAfter = 10 * time.Minute
	}
	return &Controller{
		logger:    logger,
		cfg:       cfg,
		repo:      repo,
		source:    source,
		extractor: extractor,
		publisher: publisher,
	}
}

// Submit creates a record in submitted with its file references stored
// verbatim. It never blocks on extraction; dispatch is the caller's move
// (Advance, or a background queue).
func (c *Controller) Submit(ctx context.Context, title string, files []entity.QuoteFile) (*entity.Comparison, error) {
	if title == "" {
		return nil, common.NewAppError("INVALID_TITLE", "title is required", common.ErrInvalidInput)
	}
	if len(files) == 0 {
		return nil, common.NewAppError("NO_FILES", "at least one quote file is required", common.ErrInvalidInput)
	}
	rec, err := c.repo.Create(ctx, title, files)
	if err != nil {
		return nil, err
	}
	c.logger.Info("lifecycle.submitted", "comparison_id", rec.ID, "title", title, "files", len(files))
	return rec, nil
}

// Advance is the only entry point that transitions submitted|failed ->
// processing. Safe to call concurrently for the same id: only the caller
// that wins the atomic claim runs the extraction round trip; losers return
// the current record with no side effects.
func (c *Controller) Advance(ctx context.Context, id uuid.UUID) (*entity.Comparison, error) {
	return c.run(ctx, id, constants.AdvanceFrom)
}

// Regenerate re-runs extraction on demand; permitted from completed as
// well as failed. Prior items and totals stay visible until a new attempt
// succeeds.
func (c *Controller) Regenerate(ctx context.Context, id uuid.UUID) (*entity.Comparison, error) {
	return c.run(ctx, id, constants.RegenerateFrom)
}

func (c *Controller) run(ctx context.Context, id uuid.UUID, from []constants.ComparisonStatus) (*entity.Comparison, error) {
	claimed, err := c.repo.ClaimProcessing(ctx, id, from, c.cfg.StaleClaimAfter)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Losing a claim race is a no-op, not an error: the winner's
		// eventual publish will inform this caller's subscribers.
		c.logger.Info("lifecycle.claim.lost", "comparison_id", id)
		return c.repo.Get(ctx, id)
	}

	rec, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	c.logger.Info("lifecycle.processing", "comparison_id", id, "files", len(rec.Files))

	texts, err := c.source.Resolve(ctx, rec.Files)
	if err != nil {
		return c.fail(ctx, id, common.ExtractionError("resolve documents", err))
	}

	raw, _, err := c.extractor.ExtractPrices(ctx, texts)
	if err != nil {
		return c.fail(ctx, id, common.ExtractionError("extraction gateway", err))
	}

	items, vendors, err := normalize.Normalize(raw)
	if err != nil {
		return c.fail(ctx, id, err)
	}

	res := aggregate.Aggregate(items)
	updated, err := c.repo.Complete(ctx, id, repository.CompletionResult{
		Items:      items,
		Vendors:    vendors,
		TotalCents: res.TotalCents,
	})
	if err != nil {
		// persistence failure: surface it, but still try to release the
		// claim so the record is not stuck until the staleness override
		if _, ferr := c.repo.MarkFailed(ctx, id, "persist results: "+err.Error()); ferr != nil {
			c.logger.Error("lifecycle.fail_mark_error", "comparison_id", id, "error", ferr)
		}
		return nil, err
	}

	c.publisher.Publish(updated)
	c.logger.Info("lifecycle.completed",
		"comparison_id", id,
		"items", len(items),
		"vendors", len(vendors),
		"total_cents", res.TotalCents,
		"data_absent", updated.DataAbsent(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return updated, nil
}

// fail records the failure reason and notifies subscribers. Previously
// computed items and totals are preserved so a failed regeneration never
// erases good data.
func (c *Controller) fail(ctx context.Context, id uuid.UUID, cause error) (*entity.Comparison, error) {
	rec, err := c.repo.MarkFailed(ctx, id, cause.Error())
	if err != nil {
		c.logger.Error("lifecycle.fail_mark_error", "comparison_id", id, "error", err)
		return nil, err
	}
	c.publisher.Publish(rec)
	return rec, cause
}
