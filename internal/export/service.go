package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/harshmriduhash/iq-procure-assist/internal/aggregate"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
	"github.com/harshmriduhash/iq-procure-assist/internal/utils"
)

// Service is a tiny façade over the repository that produces XLSX bytes
// for a comparison matrix.
type Service struct {
	repo   repository.ComparisonRepository
	logger *slog.Logger
}

func NewService(repo repository.ComparisonRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportComparisonXLSX returns an XLSX workbook (as bytes) for the given
// comparison. Lowest/highest flags are recomputed from the stored items,
// never read back from derived columns.
func (s *Service) ExportComparisonXLSX(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	start := time.Now()

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	res := aggregate.Aggregate(rec.Items)

	f := excelize.NewFile()
	const sheet = "Comparison"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Item", "Unit"}
	for _, v := range rec.Vendors {
		headers = append(headers, v.Name)
	}
	headers = append(headers, "Best Price", "Lowest Vendor(s)")
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	rowNum := 2
	for i, item := range rec.Items {
		st := res.PerItem[i]
		values := []any{item.Name, item.Unit}
		for slot := range rec.Vendors {
			if cents, ok := item.PricesByVendor[slot]; ok {
				values = append(values, "$"+utils.CentsToDollars(cents))
			} else {
				values = append(values, "N/A")
			}
		}
		if st.MinCents != nil {
			values = append(values, "$"+utils.CentsToDollars(*st.MinCents), vendorNames(rec.Vendors, st.MinVendors))
		} else {
			values = append(values, "N/A", "")
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
		rowNum++
	}

	// totals row
	totalCell, _ := excelize.CoordinatesToCellName(1, rowNum+1)
	_ = f.SetCellValue(sheet, totalCell, "Best achievable total")
	totalValCell, _ := excelize.CoordinatesToCellName(len(rec.Vendors)+3, rowNum+1)
	_ = f.SetCellValue(sheet, totalValCell, "$"+utils.CentsToDollars(rec.TotalCents))

	_ = f.SetColWidth(sheet, "A", "A", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("comparison-%s.xlsx", sanitizeFilename(rec.Title))
	s.logger.Info("export.xlsx.ok",
		"comparison_id", id,
		"rows", len(rec.Items),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), filename, nil
}

func vendorNames(vendors []entity.VendorRef, idxs []int) string {
	names := make([]string, 0, len(idxs))
	for _, i := range idxs {
		if i >= 0 && i < len(vendors) {
			names = append(names, vendors[i].Name)
		}
	}
	return strings.Join(names, ", ")
}

func sanitizeFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
