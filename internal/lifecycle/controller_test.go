package lifecycle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
	"github.com/harshmriduhash/iq-procure-assist/internal/repository"
)

// memRepo mirrors the persisted claim semantics in memory: the same
// conditional status update the real repository issues as one SQL statement.
type memRepo struct {
	mu   sync.Mutex
	recs map[uuid.UUID]*entity.Comparison

	completeErr error
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[uuid.UUID]*entity.Comparison)}
}

func (m *memRepo) put(rec *entity.Comparison) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[rec.ID] = rec
}

func (m *memRepo) Create(_ context.Context, title string, files []entity.QuoteFile) (*entity.Comparison, error) {
	rec := &entity.Comparison{
		ID:        uuid.New(),
		Title:     title,
		Status:    constants.StatusSubmitted,
		Files:     files,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	m.put(rec)
	return snapshot(rec), nil
}

func (m *memRepo) Get(_ context.Context, id uuid.UUID) (*entity.Comparison, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return snapshot(rec), nil
}

func (m *memRepo) List(_ context.Context) ([]*entity.Comparison, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Comparison, 0, len(m.recs))
	for _, rec := range m.recs {
		out = append(out, snapshot(rec))
	}
	return out, nil
}

func (m *memRepo) ClaimProcessing(_ context.Context, id uuid.UUID, from []constants.ComparisonStatus, staleAfter time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return false, nil
	}
	now := time.Now().UTC()
	eligible := false
	for _, s := range from {
		if rec.Status == s {
			eligible = true
		}
	}
	if rec.Status == constants.StatusProcessing && rec.UpdatedAt.Before(now.Add(-staleAfter)) {
		eligible = true
	}
	if !eligible {
		return false, nil
	}
	rec.Status = constants.StatusProcessing
	rec.UpdatedAt = now
	return true, nil
}

func (m *memRepo) Complete(_ context.Context, id uuid.UUID, res repository.CompletionResult) (*entity.Comparison, error) {
	if m.completeErr != nil {
		return nil, m.completeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.recs[id]
	rec.Status = constants.StatusCompleted
	rec.Items = res.Items
	rec.Vendors = res.Vendors
	rec.TotalCents = res.TotalCents
	rec.ItemCount = len(res.Items)
	rec.VendorCount = len(res.Vendors)
	rec.FailureReason = nil
	rec.Memo = nil
	rec.UpdatedAt = time.Now().UTC()
	return snapshot(rec), nil
}

func (m *memRepo) MarkFailed(_ context.Context, id uuid.UUID, reason string) (*entity.Comparison, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.recs[id]
	rec.Status = constants.StatusFailed
	rec.FailureReason = &reason
	rec.UpdatedAt = time.Now().UTC()
	return snapshot(rec), nil
}

func (m *memRepo) SetMemo(_ context.Context, id uuid.UUID, memo string) (*entity.Comparison, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.recs[id]
	rec.Memo = &memo
	rec.UpdatedAt = time.Now().UTC()
	return snapshot(rec), nil
}

func snapshot(rec *entity.Comparison) *entity.Comparison {
	cp := *rec
	return &cp
}

type stubSource struct{}

func (stubSource) Resolve(_ context.Context, files []entity.QuoteFile) ([]llm.DocumentText, error) {
	out := make([]llm.DocumentText, len(files))
	for i, f := range files {
		out[i] = llm.DocumentText{Filename: f.Filename, Content: "quote body"}
	}
	return out, nil
}

type stubExtractor struct {
	calls atomic.Int64
	delay time.Duration
	raw   llm.RawExtraction
	err   error
}

func (e *stubExtractor) ExtractPrices(ctx context.Context, _ []llm.DocumentText) (llm.RawExtraction, []byte, error) {
	e.calls.Add(1)
	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return llm.RawExtraction{}, nil, ctx.Err()
		}
	}
	if e.err != nil {
		return llm.RawExtraction{}, nil, e.err
	}
	return e.raw, []byte("{}"), nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	recs []*entity.Comparison
}

func (p *recordingPublisher) Publish(rec *entity.Comparison) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recs = append(p.recs, rec)
}

func (p *recordingPublisher) published() []*entity.Comparison {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*entity.Comparison(nil), p.recs...)
}

func fp(v float64) *float64 { return &v }

func testController(repo repository.ComparisonRepository, ex llm.PriceExtractor, pub Publisher) *Controller {
	return NewController(nil, Config{StaleClaimAfter: time.Minute}, repo, stubSource{}, ex, pub)
}

func submitOne(t *testing.T, ctrl *Controller) *entity.Comparison {
	t.Helper()
	rec, err := ctrl.Submit(context.Background(), "Q3 steel order", []entity.QuoteFile{
		{Filename: "a.txt", StoragePath: "/tmp/a.txt"},
	})
	require.NoError(t, err)
	require.Equal(t, constants.StatusSubmitted, rec.Status)
	return rec
}

func TestSubmitValidation(t *testing.T) {
	ctrl := testController(newMemRepo(), &stubExtractor{}, &recordingPublisher{})

	_, err := ctrl.Submit(context.Background(), "", []entity.QuoteFile{{Filename: "a.txt"}})
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	_, err = ctrl.Submit(context.Background(), "t", nil)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestAdvanceHappyPath(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{raw: llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Steel Beams", VendorAPrice: fp(12.50), VendorBPrice: fp(11.80), VendorCPrice: fp(13.50)},
			{ItemName: "Rebar", VendorAPrice: fp(9.00), VendorBPrice: fp(9.00)},
		},
		Vendors: []llm.RawVendor{{Name: "Acme"}, {Name: "Benton"}, {Name: "Corr"}},
	}}
	pub := &recordingPublisher{}
	ctrl := testController(repo, ex, pub)

	rec := submitOne(t, ctrl)
	got, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusCompleted, got.Status)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(1180+900), got.TotalCents)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, 3, got.VendorCount)
	assert.Nil(t, got.FailureReason)

	pubs := pub.published()
	require.Len(t, pubs, 1, "exactly one publish per transition")
	assert.Equal(t, constants.StatusCompleted, pubs[0].Status)
}

func TestConcurrentAdvanceRunsExtractionOnce(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{
		delay: 30 * time.Millisecond,
		raw: llm.RawExtraction{Items: []llm.RawItem{
			{ItemName: "Pipe", VendorAPrice: fp(4.00)},
		}},
	}
	ctrl := testController(repo, ex, &recordingPublisher{})
	rec := submitOne(t, ctrl)

	const callers = 16
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ctrl.Advance(context.Background(), rec.ID)
			// losers return the current record with no error
			assert.NoError(t, err)
			assert.NotNil(t, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), ex.calls.Load(), "only the claim winner calls the gateway")
}

func TestAdvanceLosesToFreshProcessingClaim(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{}
	ctrl := testController(repo, ex, &recordingPublisher{})
	rec := submitOne(t, ctrl)

	// someone else holds a live claim
	claimed, err := repo.ClaimProcessing(context.Background(), rec.ID, constants.AdvanceFrom, time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)

	got, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessing, got.Status)
	assert.Zero(t, ex.calls.Load(), "loser must not touch the gateway")
}

func TestAdvanceOverridesStaleProcessingClaim(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{raw: llm.RawExtraction{Items: []llm.RawItem{
		{ItemName: "Pipe", VendorAPrice: fp(4.00)},
	}}}
	ctrl := testController(repo, ex, &recordingPublisher{})
	rec := submitOne(t, ctrl)

	// simulate a crashed worker: processing, last touched long ago
	repo.mu.Lock()
	repo.recs[rec.ID].Status = constants.StatusProcessing
	repo.recs[rec.ID].UpdatedAt = time.Now().UTC().Add(-time.Hour)
	repo.mu.Unlock()

	got, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, got.Status)
	assert.Equal(t, int64(1), ex.calls.Load())
}

func TestFailedExtractionPreservesPriorResults(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{raw: llm.RawExtraction{Items: []llm.RawItem{
		{ItemName: "Lumber", VendorAPrice: fp(20.00)},
	}}}
	pub := &recordingPublisher{}
	ctrl := testController(repo, ex, pub)

	rec := submitOne(t, ctrl)
	_, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)

	ex.err = errors.New("gateway timeout")
	got, err := ctrl.Regenerate(context.Background(), rec.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))

	require.NotNil(t, got)
	assert.Equal(t, constants.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "gateway timeout")
	// the last good matrix stays visible
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(2000), got.TotalCents)

	pubs := pub.published()
	require.Len(t, pubs, 2)
	assert.Equal(t, constants.StatusFailed, pubs[1].Status)
}

func TestAdvanceZeroItemsCompletesDataAbsent(t *testing.T) {
	repo := newMemRepo()
	ctrl := testController(repo, &stubExtractor{}, &recordingPublisher{})

	rec := submitOne(t, ctrl)
	got, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusCompleted, got.Status)
	assert.True(t, got.DataAbsent())
	assert.Empty(t, got.Items)
	assert.Zero(t, got.TotalCents)
}

func TestAdvanceNormalizationFailure(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{raw: llm.RawExtraction{Items: []llm.RawItem{
		{ItemName: "   "},
	}}}
	ctrl := testController(repo, ex, &recordingPublisher{})

	rec := submitOne(t, ctrl)
	got, err := ctrl.Advance(context.Background(), rec.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNormalization))
	assert.Equal(t, constants.StatusFailed, got.Status)
}

func TestAdvanceNotRunnableFromCompletedButRegenerateIs(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{raw: llm.RawExtraction{Items: []llm.RawItem{
		{ItemName: "Pipe", VendorAPrice: fp(4.00)},
	}}}
	ctrl := testController(repo, ex, &recordingPublisher{})

	rec := submitOne(t, ctrl)
	_, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), ex.calls.Load())

	// Advance does not claim from completed
	got, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, got.Status)
	assert.Equal(t, int64(1), ex.calls.Load())

	// Regenerate does
	got, err = ctrl.Regenerate(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, got.Status)
	assert.Equal(t, int64(2), ex.calls.Load())
}

func TestCompletionClearsStaleMemo(t *testing.T) {
	repo := newMemRepo()
	ex := &stubExtractor{raw: llm.RawExtraction{Items: []llm.RawItem{
		{ItemName: "Pipe", VendorAPrice: fp(4.00)},
	}}}
	ctrl := testController(repo, ex, &recordingPublisher{})

	rec := submitOne(t, ctrl)
	_, err := ctrl.Advance(context.Background(), rec.ID)
	require.NoError(t, err)
	_, err = repo.SetMemo(context.Background(), rec.ID, "old memo text")
	require.NoError(t, err)

	got, err := ctrl.Regenerate(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Memo, "memo describes the previous matrix, cleared on regeneration")
}
