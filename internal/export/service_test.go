package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
)

type stubRepo struct {
	repository.ComparisonRepository
	rec *entity.Comparison
}

func (s *stubRepo) Get(_ context.Context, id uuid.UUID) (*entity.Comparison, error) {
	if s.rec == nil || s.rec.ID != id {
		return nil, common.NewAppError("NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return s.rec, nil
}

func TestExportComparisonXLSX(t *testing.T) {
	rec := &entity.Comparison{
		ID:     uuid.New(),
		Title:  "Q3 Steel Order!",
		Status: constants.StatusCompleted,
		Items: []entity.ComparisonItem{
			{Name: "Steel Beams", Unit: "ton", PricesByVendor: map[int]int64{0: 1250, 1: 1180, 2: 1350}},
			{Name: "Sealant", PricesByVendor: map[int]int64{}},
		},
		Vendors:    []entity.VendorRef{{Name: "Acme"}, {Name: "Benton"}, {Name: "Corr"}},
		TotalCents: 1180,
	}
	svc := NewService(&stubRepo{rec: rec}, nil)

	data, filename, err := svc.ExportComparisonXLSX(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "comparison-q3-steel-order.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Comparison"

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	// header row carries the vendor columns
	assert.Equal(t, "Item", cell("A1"))
	assert.Equal(t, "Acme", cell("C1"))
	assert.Equal(t, "Corr", cell("E1"))
	assert.Equal(t, "Best Price", cell("F1"))

	assert.Equal(t, "Steel Beams", cell("A2"))
	assert.Equal(t, "ton", cell("B2"))
	assert.Equal(t, "$12.50", cell("C2"))
	assert.Equal(t, "$11.80", cell("F2"))
	assert.Equal(t, "Benton", cell("G2"))

	// priceless row renders N/A across the board
	assert.Equal(t, "Sealant", cell("A3"))
	assert.Equal(t, "N/A", cell("C3"))
	assert.Equal(t, "N/A", cell("F3"))

	assert.Equal(t, "Best achievable total", cell("A5"))
	assert.Equal(t, "$11.80", cell("F5"))
}

func TestExportUnknownComparison(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	_, _, err := svc.ExportComparisonXLSX(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "q3-steel-order", sanitizeFilename("  Q3 Steel Order! "))
	assert.Equal(t, "untitled", sanitizeFilename("???"))
	assert.Equal(t, "a-b-c", sanitizeFilename("a_b-c"))
}
