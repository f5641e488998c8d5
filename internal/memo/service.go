// Package memo turns a finalized comparison into a narrative procurement
// approval memo via the external writer and stores the text verbatim.
package memo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/lifecycle"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
	"github.com/harshmriduhash/iq-procure-assist/internal/utils"
)

type Service struct {
	repo      repository.ComparisonRepository
	writer    llm.MemoWriter
	publisher lifecycle.Publisher
	logger    *slog.Logger
}

func NewService(repo repository.ComparisonRepository, writer llm.MemoWriter, publisher lifecycle.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, writer: writer, publisher: publisher, logger: logger}
}

// Generate writes a memo for a completed comparison with data. The memo is
// stored on the record and the updated record is published.
func (s *Service) Generate(ctx context.Context, id uuid.UUID) (*entity.Comparison, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != constants.StatusCompleted {
		return nil, common.NewAppError("MEMO_NOT_READY",
			fmt.Sprintf("comparison is %s, memo requires completed", rec.Status),
			common.ErrInvalidState)
	}
	if len(rec.Items) == 0 {
		return nil, common.NewAppError("MEMO_NO_DATA", "no comparison data available", common.ErrInvalidState)
	}

	req := llm.MemoRequest{
		Title:        rec.Title,
		ItemCount:    rec.ItemCount,
		VendorCount:  rec.VendorCount,
		TotalDollars: utils.CentsToDollars(rec.TotalCents),
		ItemAnalysis: buildItemAnalysis(rec),
	}

	s.logger.Info("memo.generate.start", "comparison_id", id, "items", rec.ItemCount)
	text, err := s.writer.WriteMemo(ctx, req)
	if err != nil {
		s.logger.Error("memo.generate.failed", "comparison_id", id, "error", err)
		return nil, err
	}

	updated, err := s.repo.SetMemo(ctx, id, text)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(updated)
	s.logger.Info("memo.generate.ok", "comparison_id", id, "memo_bytes", len(text))
	return updated, nil
}

// buildItemAnalysis renders one "name: Vendor: $price, ..." line per item,
// the shape the writer prompt expects.
func buildItemAnalysis(rec *entity.Comparison) string {
	var b strings.Builder
	for _, item := range rec.Items {
		var prices []string
		for slot, v := range rec.Vendors {
			cents, ok := item.PricesByVendor[slot]
			if !ok {
				continue
			}
			prices = append(prices, fmt.Sprintf("%s: $%s", v.Name, utils.CentsToDollars(cents)))
		}
		if len(prices) == 0 {
			prices = append(prices, "no quotes")
		}
		fmt.Fprintf(&b, "%s: %s\n", item.Name, strings.Join(prices, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
