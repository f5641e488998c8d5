package memo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
)

type stubRepo struct {
	repository.ComparisonRepository

	rec    *entity.Comparison
	stored *string
}

func (s *stubRepo) Get(_ context.Context, id uuid.UUID) (*entity.Comparison, error) {
	if s.rec == nil || s.rec.ID != id {
		return nil, common.NewAppError("NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return s.rec, nil
}

func (s *stubRepo) SetMemo(_ context.Context, _ uuid.UUID, memo string) (*entity.Comparison, error) {
	s.stored = &memo
	cp := *s.rec
	cp.Memo = &memo
	return &cp, nil
}

type stubWriter struct {
	got  llm.MemoRequest
	text string
	err  error
}

func (w *stubWriter) WriteMemo(_ context.Context, req llm.MemoRequest) (string, error) {
	w.got = req
	return w.text, w.err
}

type captivePublisher struct {
	recs []*entity.Comparison
}

func (p *captivePublisher) Publish(rec *entity.Comparison) { p.recs = append(p.recs, rec) }

func completedRecord() *entity.Comparison {
	return &entity.Comparison{
		ID:     uuid.New(),
		Title:  "Q3 steel order",
		Status: constants.StatusCompleted,
		Items: []entity.ComparisonItem{
			{Name: "Steel Beams", PricesByVendor: map[int]int64{0: 1250, 1: 1180}},
			{Name: "Sealant", PricesByVendor: map[int]int64{}},
		},
		Vendors:     []entity.VendorRef{{Name: "Acme"}, {Name: "Benton"}},
		TotalCents:  1180,
		ItemCount:   2,
		VendorCount: 2,
	}
}

func TestGenerateStoresAndPublishesMemo(t *testing.T) {
	repo := &stubRepo{rec: completedRecord()}
	writer := &stubWriter{text: "Recommend Benton."}
	pub := &captivePublisher{}
	svc := NewService(repo, writer, pub, nil)

	got, err := svc.Generate(context.Background(), repo.rec.ID)
	require.NoError(t, err)

	require.NotNil(t, got.Memo)
	assert.Equal(t, "Recommend Benton.", *got.Memo)
	require.NotNil(t, repo.stored)
	assert.Equal(t, "Recommend Benton.", *repo.stored)
	require.Len(t, pub.recs, 1)

	assert.Equal(t, "Q3 steel order", writer.got.Title)
	assert.Equal(t, 2, writer.got.ItemCount)
	assert.Equal(t, "11.80", writer.got.TotalDollars)
	assert.Equal(t, "Steel Beams: Acme: $12.50, Benton: $11.80\nSealant: no quotes", writer.got.ItemAnalysis)
}

func TestGenerateRequiresCompletedStatus(t *testing.T) {
	rec := completedRecord()
	rec.Status = constants.StatusProcessing
	svc := NewService(&stubRepo{rec: rec}, &stubWriter{}, &captivePublisher{}, nil)

	_, err := svc.Generate(context.Background(), rec.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidState))
}

func TestGenerateRequiresData(t *testing.T) {
	rec := completedRecord()
	rec.Items = nil
	svc := NewService(&stubRepo{rec: rec}, &stubWriter{}, &captivePublisher{}, nil)

	_, err := svc.Generate(context.Background(), rec.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidState))
}

func TestGenerateWriterFailureStoresNothing(t *testing.T) {
	repo := &stubRepo{rec: completedRecord()}
	pub := &captivePublisher{}
	svc := NewService(repo, &stubWriter{err: errors.New("gateway down")}, pub, nil)

	_, err := svc.Generate(context.Background(), repo.rec.ID)
	require.Error(t, err)
	assert.Nil(t, repo.stored)
	assert.Empty(t, pub.recs)
}
