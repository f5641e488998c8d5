package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/utils"
)

// CompletionResult wraps everything a successful pipeline run persists in
// one write.
type CompletionResult struct {
	Items      []entity.ComparisonItem
	Vendors    []entity.VendorRef
	TotalCents int64
}

type ComparisonRepository interface {
	Create(ctx context.Context, title string, files []entity.QuoteFile) (*entity.Comparison, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Comparison, error)
	List(ctx context.Context) ([]*entity.Comparison, error)
	// ClaimProcessing atomically moves the record into processing if its
	// status is one of "from", or if an existing processing claim is older
	// than staleAfter. Returns false when another caller holds the claim.
	ClaimProcessing(ctx context.Context, id uuid.UUID, from []constants.ComparisonStatus, staleAfter time.Duration) (bool, error)
	// Complete persists the normalized and aggregated results, moves the
	// record to completed, and clears failure reason plus the now-stale memo.
	Complete(ctx context.Context, id uuid.UUID, res CompletionResult) (*entity.Comparison, error)
	// MarkFailed records the failure reason and status only; previously
	// computed items, vendors, totals, and memo are left untouched.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) (*entity.Comparison, error)
	SetMemo(ctx context.Context, id uuid.UUID, memo string) (*entity.Comparison, error)
}

type comparisonRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewComparisonRepository(client *ent.Client, logger *slog.Logger) ComparisonRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &comparisonRepo{client: client, logger: logger}
}

func (r *comparisonRepo) Create(ctx context.Context, title string, files []entity.QuoteFile) (*entity.Comparison, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("comparison create: begin tx failed", "error", err)
		return nil, err
	}

	row, err := tx.Comparison.
		Create().
		SetTitle(title).
		SetStatus(string(constants.StatusSubmitted)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("comparison create failed", "title", title, "error", err)
		return nil, err
	}

	builders := make([]*ent.QuoteFileCreate, len(files))
	for i, f := range files {
		b := tx.QuoteFile.
			Create().
			SetComparisonID(row.ID).
			SetFilename(f.Filename).
			SetStoragePath(f.StoragePath).
			SetFileSize(f.FileSize)
		if f.VendorSlot != nil {
			b = b.SetVendorSlot(*f.VendorSlot)
		}
		builders[i] = b
	}
	if _, err := tx.QuoteFile.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("quote files create failed", "comparison_id", row.ID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("comparison create: commit failed", "comparison_id", row.ID, "error", err)
		return nil, err
	}

	r.logger.Info("comparison created", "comparison_id", row.ID, "title", title, "files", len(files))
	return r.Get(ctx, row.ID)
}

func (r *comparisonRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Comparison, error) {
	row, err := r.client.Comparison.
		Query().
		Where(comparison.ID(id)).
		WithFiles(func(q *ent.QuoteFileQuery) {
			q.Order(quotefile.ByUploadedAt())
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "comparison "+id.String(), common.ErrNotFound)
		}
		r.logger.Error("comparison get failed", "comparison_id", id, "error", err)
		return nil, err
	}
	return utils.ToComparison(row), nil
}

func (r *comparisonRepo) List(ctx context.Context) ([]*entity.Comparison, error) {
	rows, err := r.client.Comparison.
		Query().
		WithFiles().
		Order(ent.Desc(comparison.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("comparison list failed", "error", err)
		return nil, err
	}
	out := make([]*entity.Comparison, len(rows))
	for i, row := range rows {
		out[i] = utils.ToComparison(row)
	}
	return out, nil
}

// ClaimProcessing is the single lock-like discipline in the system. It is a
// conditional update on the persisted row, not an in-process mutex, because
// independent callers (UI actions, background workers, concurrent tabs) race.
func (r *comparisonRepo) ClaimProcessing(ctx context.Context, id uuid.UUID, from []constants.ComparisonStatus, staleAfter time.Duration) (bool, error) {
	now := time.Now().UTC()
	n, err := r.client.Comparison.
		Update().
		Where(
			comparison.ID(id),
			comparison.Or(
				comparison.StatusIn(constants.StatusStrings(from)...),
				// a crashed extraction must not lock the record forever
				comparison.And(
					comparison.StatusEQ(string(constants.StatusProcessing)),
					comparison.UpdatedAtLT(now.Add(-staleAfter)),
				),
			),
		).
		SetStatus(string(constants.StatusProcessing)).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("comparison claim failed", "comparison_id", id, "error", err)
		return false, err
	}
	if n == 0 {
		r.logger.Info("comparison claim lost", "comparison_id", id)
		return false, nil
	}
	r.logger.Info("comparison claimed for processing", "comparison_id", id)
	return true, nil
}

func (r *comparisonRepo) Complete(ctx context.Context, id uuid.UUID, res CompletionResult) (*entity.Comparison, error) {
	_, err := r.client.Comparison.
		UpdateOneID(id).
		SetStatus(string(constants.StatusCompleted)).
		SetItems(res.Items).
		SetVendors(res.Vendors).
		SetTotalCents(res.TotalCents).
		SetItemCount(len(res.Items)).
		SetVendorCount(len(res.Vendors)).
		ClearFailureReason().
		ClearMemo().
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("comparison complete failed", "comparison_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("comparison completed",
		"comparison_id", id,
		"items", len(res.Items),
		"vendors", len(res.Vendors),
		"total_cents", res.TotalCents,
	)
	return r.Get(ctx, id)
}

func (r *comparisonRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) (*entity.Comparison, error) {
	_, err := r.client.Comparison.
		UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetFailureReason(reason).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("comparison fail-mark failed", "comparison_id", id, "error", err)
		return nil, err
	}
	r.logger.Warn("comparison failed", "comparison_id", id, "reason", reason)
	return r.Get(ctx, id)
}

func (r *comparisonRepo) SetMemo(ctx context.Context, id uuid.UUID, memo string) (*entity.Comparison, error) {
	_, err := r.client.Comparison.
		UpdateOneID(id).
		SetMemo(memo).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("comparison memo update failed", "comparison_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("comparison memo stored", "comparison_id", id, "memo_bytes", len(memo))
	return r.Get(ctx, id)
}
