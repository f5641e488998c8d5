package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

func sampleFiles() []entity.QuoteFile {
	slot := 1
	return []entity.QuoteFile{
		{Filename: "acme.txt", StoragePath: "/quotes/acme.txt", FileSize: 120},
		{Filename: "benton.csv", StoragePath: "/quotes/benton.csv", FileSize: 340, VendorSlot: &slot},
	}
}

func sampleResult() CompletionResult {
	return CompletionResult{
		Items: []entity.ComparisonItem{
			{Name: "Steel Beams", Unit: "ton", PricesByVendor: map[int]int64{0: 1250, 1: 1180}},
			{Name: "Rebar", PricesByVendor: map[int]int64{1: 900}},
		},
		Vendors: []entity.VendorRef{
			{Name: "Acme", Contact: "acme@example.com"},
			{Name: "Benton"},
		},
		TotalCents: 1180 + 900,
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo, ctx := testRepo(t)

	rec, err := repo.Create(ctx, "Q3 steel order", sampleFiles())
	require.NoError(t, err)

	assert.Equal(t, "Q3 steel order", rec.Title)
	assert.Equal(t, constants.StatusSubmitted, rec.Status)
	require.Len(t, rec.Files, 2)
	assert.Equal(t, "acme.txt", rec.Files[0].Filename)
	assert.Nil(t, rec.Files[0].VendorSlot)
	require.NotNil(t, rec.Files[1].VendorSlot)
	assert.Equal(t, 1, *rec.Files[1].VendorSlot)
	assert.Empty(t, rec.Items)
	assert.Nil(t, rec.Memo)
	assert.Nil(t, rec.FailureReason)

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Len(t, got.Files, 2)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	repo, ctx := testRepo(t)

	_, err := repo.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestListNewestFirst(t *testing.T) {
	repo, ctx := testRepo(t)

	first, err := repo.Create(ctx, "first", sampleFiles())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond) // created_at granularity
	second, err := repo.Create(ctx, "second", sampleFiles())
	require.NoError(t, err)

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, second.ID, recs[0].ID)
	assert.Equal(t, first.ID, recs[1].ID)
}

func TestClaimProcessingIsExclusive(t *testing.T) {
	repo, ctx := testRepo(t)
	rec, err := repo.Create(ctx, "claim test", sampleFiles())
	require.NoError(t, err)

	claimed, err := repo.ClaimProcessing(ctx, rec.ID, constants.AdvanceFrom, time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)

	// second claim loses while the first is live
	claimed, err = repo.ClaimProcessing(ctx, rec.ID, constants.AdvanceFrom, time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed)

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessing, got.Status)
}

func TestClaimProcessingStaleOverride(t *testing.T) {
	repo, ctx := testRepo(t)
	rec, err := repo.Create(ctx, "stale test", sampleFiles())
	require.NoError(t, err)

	claimed, err := repo.ClaimProcessing(ctx, rec.ID, constants.AdvanceFrom, time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)

	// a zero staleness window makes the live claim immediately stale
	time.Sleep(5 * time.Millisecond)
	claimed, err = repo.ClaimProcessing(ctx, rec.ID, constants.AdvanceFrom, 0)
	require.NoError(t, err)
	assert.True(t, claimed, "stale processing claims are reclaimable")
}

func TestClaimProcessingFromStatuses(t *testing.T) {
	repo, ctx := testRepo(t)
	rec, err := repo.Create(ctx, "from test", sampleFiles())
	require.NoError(t, err)

	claimed, err := repo.ClaimProcessing(ctx, rec.ID, constants.AdvanceFrom, time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)
	_, err = repo.Complete(ctx, rec.ID, sampleResult())
	require.NoError(t, err)

	// completed is not an Advance source
	claimed, err = repo.ClaimProcessing(ctx, rec.ID, constants.AdvanceFrom, time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed)

	// but it is a Regenerate source
	claimed, err = repo.ClaimProcessing(ctx, rec.ID, constants.RegenerateFrom, time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestCompletePersistsMatrixAndClearsFailure(t *testing.T) {
	repo, ctx := testRepo(t)
	rec, err := repo.Create(ctx, "complete test", sampleFiles())
	require.NoError(t, err)

	_, err = repo.MarkFailed(ctx, rec.ID, "first attempt timed out")
	require.NoError(t, err)
	_, err = repo.SetMemo(ctx, rec.ID, "stale memo")
	require.NoError(t, err)

	got, err := repo.Complete(ctx, rec.ID, sampleResult())
	require.NoError(t, err)

	assert.Equal(t, constants.StatusCompleted, got.Status)
	require.Len(t, got.Items, 2)
	assert.Equal(t, map[int]int64{0: 1250, 1: 1180}, got.Items[0].PricesByVendor)
	assert.Equal(t, "ton", got.Items[0].Unit)
	require.Len(t, got.Vendors, 2)
	assert.Equal(t, "acme@example.com", got.Vendors[0].Contact)
	assert.Equal(t, int64(2080), got.TotalCents)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, 2, got.VendorCount)
	assert.Nil(t, got.FailureReason, "success clears the failure reason")
	assert.Nil(t, got.Memo, "success clears the stale memo")
}

func TestMarkFailedPreservesPriorResults(t *testing.T) {
	repo, ctx := testRepo(t)
	rec, err := repo.Create(ctx, "fail test", sampleFiles())
	require.NoError(t, err)

	_, err = repo.Complete(ctx, rec.ID, sampleResult())
	require.NoError(t, err)

	got, err := repo.MarkFailed(ctx, rec.ID, "regeneration blew up")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Equal(t, "regeneration blew up", *got.FailureReason)
	assert.Len(t, got.Items, 2, "prior matrix survives the failure")
	assert.Equal(t, int64(2080), got.TotalCents)
}

func TestSetMemo(t *testing.T) {
	repo, ctx := testRepo(t)
	rec, err := repo.Create(ctx, "memo test", sampleFiles())
	require.NoError(t, err)

	got, err := repo.SetMemo(ctx, rec.ID, "approve Benton for rebar")
	require.NoError(t, err)
	require.NotNil(t, got.Memo)
	assert.Equal(t, "approve Benton for rebar", *got.Memo)
}
