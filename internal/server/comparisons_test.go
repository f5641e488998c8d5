package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	procurementpb "github.com/harshmriduhash/iq-procure-assist/gen/proto/procurement/v1"
	"github.com/harshmriduhash/iq-procure-assist/internal/async"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/docs"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/lifecycle"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
	"github.com/harshmriduhash/iq-procure-assist/internal/notify"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
)

// stubRepo covers the handlers under test; claims always lose so background
// workers never run extraction against it.
type stubRepo struct {
	repository.ComparisonRepository

	mu   sync.Mutex
	recs map[uuid.UUID]*entity.Comparison
}

func newStubRepo() *stubRepo {
	return &stubRepo{recs: make(map[uuid.UUID]*entity.Comparison)}
}

func (s *stubRepo) Create(_ context.Context, title string, files []entity.QuoteFile) (*entity.Comparison, error) {
	rec := &entity.Comparison{
		ID:     uuid.New(),
		Title:  title,
		Status: constants.StatusSubmitted,
		Files:  files,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.ID] = rec
	return rec, nil
}

func (s *stubRepo) Get(_ context.Context, id uuid.UUID) (*entity.Comparison, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return rec, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Comparison, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Comparison, 0, len(s.recs))
	for _, rec := range s.recs {
		out = append(out, rec)
	}
	return out, nil
}

func (s *stubRepo) has(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.recs[id]
	return ok
}

func (s *stubRepo) ClaimProcessing(context.Context, uuid.UUID, []constants.ComparisonStatus, time.Duration) (bool, error) {
	return false, nil
}

type noopSource struct{}

func (noopSource) Resolve(context.Context, []entity.QuoteFile) ([]llm.DocumentText, error) {
	return nil, nil
}

type noopExtractor struct{}

func (noopExtractor) ExtractPrices(context.Context, []llm.DocumentText) (llm.RawExtraction, []byte, error) {
	return llm.RawExtraction{}, nil, nil
}

func newTestService(t *testing.T) (*ComparisonsService, *stubRepo) {
	t.Helper()
	repo := newStubRepo()
	hub := notify.NewHub(nil)
	var src docs.Source = noopSource{}
	ctrl := lifecycle.NewController(nil, lifecycle.Config{}, repo, src, noopExtractor{}, hub)
	queue := async.NewQueue(ctrl, nil, async.WithWorkers(1), async.WithQueueSize(4))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		queue.Shutdown(ctx)
	})
	return NewComparisonsService(repo, ctrl, queue, nil, nil, hub, nil), repo
}

func TestCreateComparisonValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateComparison(context.Background(), &procurementpb.CreateComparisonRequest{
		Files: []*procurementpb.QuoteFileInput{{Filename: "a.txt", StoragePath: "/q/a.txt"}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateComparison(context.Background(), &procurementpb.CreateComparisonRequest{
		Title: "no files",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateComparison(context.Background(), &procurementpb.CreateComparisonRequest{
		Title: "bad file",
		Files: []*procurementpb.QuoteFileInput{{Filename: "a.txt"}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCreateComparisonSubmitsRecord(t *testing.T) {
	svc, repo := newTestService(t)

	slot := int32(2)
	resp, err := svc.CreateComparison(context.Background(), &procurementpb.CreateComparisonRequest{
		Title: "Q3 steel order",
		Files: []*procurementpb.QuoteFileInput{
			{Filename: "acme.txt", StoragePath: "/q/acme.txt", FileSize: 120},
			{Filename: "corr.txt", StoragePath: "/q/corr.txt", VendorSlot: &slot},
		},
	})
	require.NoError(t, err)

	got := resp.GetComparison()
	assert.Equal(t, "Q3 steel order", got.GetTitle())
	assert.Equal(t, string(constants.StatusSubmitted), got.GetStatus())
	require.Len(t, got.GetFiles(), 2)
	require.NotNil(t, got.GetFiles()[1].VendorSlot)
	assert.Equal(t, int32(2), got.GetFiles()[1].GetVendorSlot())

	id, err := uuid.Parse(got.GetId())
	require.NoError(t, err)
	assert.True(t, repo.has(id))
}

func TestGetComparisonErrorMapping(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetComparison(context.Background(), &procurementpb.GetComparisonRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.GetComparison(context.Background(), &procurementpb.GetComparisonRequest{Id: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.GetComparison(context.Background(), &procurementpb.GetComparisonRequest{Id: uuid.NewString()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListComparisons(t *testing.T) {
	svc, repo := newTestService(t)
	_, err := repo.Create(context.Background(), "one", []entity.QuoteFile{{Filename: "a.txt"}})
	require.NoError(t, err)

	resp, err := svc.ListComparisons(context.Background(), &procurementpb.ListComparisonsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetComparisons(), 1)
}
