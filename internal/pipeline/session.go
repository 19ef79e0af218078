package pipeline

import (
	"context"

	"gamyam/internal/models"
)

// RemoteAPI is the slice of the persistence service the session needs.
// *client.DealsClient satisfies it.
type RemoteAPI interface {
	ListDeals(ctx context.Context) ([]models.Deal, error)
	CreateDeal(ctx context.Context, deal models.Deal) (*models.Deal, error)
	UpdateDeal(ctx context.Context, deal models.Deal) (*models.Deal, error)
	DeleteDeal(ctx context.Context, id string) error
}

// Session ties a Store to the persistence service. Every mutation goes to
// the server first and is applied locally only once the server confirms,
// so a failed call leaves the store exactly as it was. Errors are returned
// once to the caller and are not retried.
type Session struct {
	store *Store
	api   RemoteAPI
}

func NewSession(store *Store, api RemoteAPI) *Session {
	return &Session{store: store, api: api}
}

func (s *Session) Store() *Store {
	return s.store
}

// Refresh reloads the collection from the server, replacing the local copy.
func (s *Session) Refresh(ctx context.Context) error {
	deals, err := s.api.ListDeals(ctx)
	if err != nil {
		return err
	}
	s.store.ReplaceAll(deals)
	return nil
}

// Create sends the deal to the server and appends the stored copy (with
// its generated id and timestamps) to the collection.
func (s *Session) Create(ctx context.Context, deal models.Deal) (*models.Deal, error) {
	created, err := s.api.CreateDeal(ctx, deal)
	if err != nil {
		return nil, err
	}
	s.store.Add(*created)
	return created, nil
}

// Update sends the full deal to the server and replaces the local entry
// with the server's copy.
func (s *Session) Update(ctx context.Context, deal models.Deal) (*models.Deal, error) {
	updated, err := s.api.UpdateDeal(ctx, deal)
	if err != nil {
		return nil, err
	}
	s.store.Update(*updated)
	return updated, nil
}

// Delete removes the deal on the server, then locally.
func (s *Session) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteDeal(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}

// ChangeStage moves the deal to the given stage, server first. Unknown
// local id is a no-op, matching the store's policy.
func (s *Session) ChangeStage(ctx context.Context, id string, stage models.Stage) error {
	current := s.store.Get(id)
	if current == nil {
		return nil
	}
	next := *current
	next.Stage = stage
	if _, err := s.api.UpdateDeal(ctx, next); err != nil {
		return err
	}
	s.store.SetStage(id, stage)
	return nil
}

// Summary recomputes the aggregate figures over the current filtered view.
func (s *Session) Summary() Summary {
	return Summarize(s.store.Filtered())
}
