package handlers_test

import (
	"sync"
	"time"

	"car-market-backend/internal/models"
	"car-market-backend/internal/store"
	"car-market-backend/internal/telegram"
)

// fakeStore is an in-memory stand-in for the Postgres store. Delete is
// atomic under the mutex, matching the row-level atomicity the real store
// gets from a single DELETE.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Submission

	createErr error
	listErr   error
	getErr    error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[int64]models.Submission)}
}

func (f *fakeStore) Create(sub *models.Submission) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	sub.ID = f.nextID
	sub.Status = models.StatusPending
	sub.CreatedAt = time.Now()
	f.rows[sub.ID] = *sub
	return sub.ID, nil
}

func (f *fakeStore) ListPending() ([]models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	subs := []models.Submission{}
	for id := f.nextID; id >= 1; id-- {
		if sub, ok := f.rows[id]; ok {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (f *fakeStore) Get(id int64) (*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	sub, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sub, nil
}

func (f *fakeStore) Delete(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []models.Submission
	err       error
}

func (f *fakePublisher) PublishListing(sub *models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, *sub)
	return nil
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

type fakeResolver struct {
	photo *telegram.Photo
	err   error
}

func (f *fakeResolver) ResolvePhoto(fileID string) (*telegram.Photo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.photo, nil
}
