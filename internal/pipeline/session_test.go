package pipeline

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamyam/internal/models"
)

// fakeAPI stands in for the persistence service. Any method with a non-nil
// err fails without touching server state.
type fakeAPI struct {
	deals []models.Deal
	err   error
	seq   int
}

func (f *fakeAPI) ListDeals(ctx context.Context) ([]models.Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Deal(nil), f.deals...), nil
}

func (f *fakeAPI) CreateDeal(ctx context.Context, deal models.Deal) (*models.Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	deal.ID = "srv-" + strconv.Itoa(f.seq)
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	deal.CreatedAt = now
	deal.UpdatedAt = now
	f.deals = append(f.deals, deal)
	return &deal, nil
}

func (f *fakeAPI) UpdateDeal(ctx context.Context, deal models.Deal) (*models.Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	deal.UpdatedAt = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	for i := range f.deals {
		if f.deals[i].ID == deal.ID {
			f.deals[i] = deal
			return &deal, nil
		}
	}
	return nil, errors.New("deal not found")
}

func (f *fakeAPI) DeleteDeal(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.deals {
		if f.deals[i].ID == id {
			f.deals = append(f.deals[:i], f.deals[i+1:]...)
			return nil
		}
	}
	return errors.New("deal not found")
}

func TestSession_Refresh_ReplacesCollection(t *testing.T) {
	api := &fakeAPI{deals: []models.Deal{
		testDeal("d1", 1000, 50, models.StageLead),
		testDeal("d2", 2000, 100, models.StageClosedWon),
	}}
	sess := NewSession(NewStore(), api)

	require.NoError(t, sess.Refresh(context.Background()))
	assert.Equal(t, 2, sess.Store().Len())
}

func TestSession_Create_AppliesServerCopy(t *testing.T) {
	api := &fakeAPI{}
	sess := NewSession(NewStore(), api)

	created, err := sess.Create(context.Background(), testDeal("", 500, 20, models.StageProposal))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got := sess.Store().Get(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestSession_Create_FailureLeavesStoreUnchanged(t *testing.T) {
	api := &fakeAPI{err: errors.New("deals api unreachable")}
	store := NewStore()
	store.Add(testDeal("d1", 1000, 50, models.StageLead))
	before := store.All()
	sess := NewSession(store, api)

	_, err := sess.Create(context.Background(), testDeal("", 500, 20, models.StageProposal))
	require.Error(t, err)
	assert.Equal(t, before, store.All())
}

func TestSession_Update_FailureLeavesStoreUnchanged(t *testing.T) {
	store := NewStore()
	store.Add(testDeal("d1", 1000, 50, models.StageLead))
	before := store.All()
	sess := NewSession(store, &fakeAPI{err: errors.New("boom")})

	changed := testDeal("d1", 9999, 90, models.StageNegotiation)
	_, err := sess.Update(context.Background(), changed)
	require.Error(t, err)
	assert.Equal(t, before, store.All())
}

func TestSession_Delete_ServerFirst(t *testing.T) {
	deal := testDeal("d1", 1000, 50, models.StageLead)
	api := &fakeAPI{deals: []models.Deal{deal}}
	store := NewStore()
	store.Add(deal)
	sess := NewSession(store, api)

	require.NoError(t, sess.Delete(context.Background(), "d1"))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, api.deals)

	// Server-side not-found surfaces and leaves the store alone.
	store.Add(deal)
	err := sess.Delete(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestSession_ChangeStage_ConfirmedThenApplied(t *testing.T) {
	deal := testDeal("d1", 1000, 50, models.StageLead)
	api := &fakeAPI{deals: []models.Deal{deal}}
	store := NewStore()
	store.Add(deal)
	sess := NewSession(store, api)

	require.NoError(t, sess.ChangeStage(context.Background(), "d1", models.StageClosedWon))
	assert.Equal(t, models.StageClosedWon, store.Get("d1").Stage)
	assert.Equal(t, models.StageClosedWon, api.deals[0].Stage)
}

func TestSession_ChangeStage_RemoteFailureKeepsLocalStage(t *testing.T) {
	deal := testDeal("d1", 1000, 50, models.StageLead)
	store := NewStore()
	store.Add(deal)
	sess := NewSession(store, &fakeAPI{err: errors.New("boom")})

	err := sess.ChangeStage(context.Background(), "d1", models.StageClosedWon)
	require.Error(t, err)
	assert.Equal(t, models.StageLead, store.Get("d1").Stage)
}

func TestSession_ChangeStage_UnknownLocalID_IsNoOp(t *testing.T) {
	sess := NewSession(NewStore(), &fakeAPI{})
	assert.NoError(t, sess.ChangeStage(context.Background(), "ghost", models.StageClosedWon))
}

func TestSession_Summary_FollowsFilteredView(t *testing.T) {
	store := NewStore()
	store.Add(testDeal("d1", 1000, 50, models.StageLead))
	store.Add(testDeal("d2", 2000, 100, models.StageClosedWon))
	sess := NewSession(store, &fakeAPI{})

	full := sess.Summary()
	assert.Equal(t, 3000.0, full.TotalValue)

	min := 1500.0
	store.SetFilters(Filters{MinValue: &min})
	filtered := sess.Summary()
	assert.Equal(t, 1, filtered.TotalDealCount)
	assert.Equal(t, 2000.0, filtered.TotalValue)
}
