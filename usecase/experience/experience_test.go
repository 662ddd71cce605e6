package experience

import (
	"context"
	"testing"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/usecase"
)

type fakeRepo struct {
	items    map[string]domain.Experience
	order    []string
	listErr  error
	listCall int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]domain.Experience)}
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.Experience, error) {
	r.listCall++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Experience, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *fakeRepo) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if exp.ID == "" {
		exp.ID = "generated"
	}
	r.items[exp.ID] = *exp
	r.order = append(r.order, exp.ID)
	return exp, nil
}

func (r *fakeRepo) Update(ctx context.Context, exp *domain.Experience) error {
	if _, ok := r.items[exp.ID]; !ok {
		return domain.ErrExperienceNotFound
	}
	r.items[exp.ID] = *exp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrExperienceNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func validExperience() *domain.Experience {
	return &domain.Experience{
		Destination: "Udaipur",
		Region:      domain.RegionWest,
		Title:       "Lake Palace",
		Description: "Boat ride on Lake Pichola",
	}
}

func TestCreateRefetchesIntoStore(t *testing.T) {
	repo := newFakeRepo()
	store := usecase.NewStore()
	m := New(repo, store, nil)

	created, err := m.Create(context.Background(), validExperience())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created experience should carry an id")
	}

	snapshot := store.Snapshot().Experiences
	if len(snapshot) != 1 || snapshot[0].ID != created.ID {
		t.Fatalf("store not refreshed after create: %+v", snapshot)
	}
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	repo := newFakeRepo()
	m := New(repo, usecase.NewStore(), nil)

	_, err := m.Create(context.Background(), &domain.Experience{Title: "only a title"})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
	if repo.listCall != 0 {
		t.Fatal("rejected payload must not trigger a refetch")
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	store := usecase.NewStore()
	m := New(repo, store, nil)

	created, err := m.Create(context.Background(), validExperience())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Title = "City Palace"
	if _, err := m.Update(context.Background(), created); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	snapshot := store.Snapshot().Experiences
	if snapshot[0].Title != "City Palace" {
		t.Fatalf("store holds stale title %q after update", snapshot[0].Title)
	}
}

func TestDeleteRemovesFromStore(t *testing.T) {
	repo := newFakeRepo()
	store := usecase.NewStore()
	m := New(repo, store, nil)

	created, err := m.Create(context.Background(), validExperience())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := m.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	for _, exp := range store.Snapshot().Experiences {
		if exp.ID == created.ID {
			t.Fatalf("deleted experience %s still in store", created.ID)
		}
	}
}

func TestDeleteMissingExperience(t *testing.T) {
	repo := newFakeRepo()
	store := usecase.NewStore()
	m := New(repo, store, nil)

	err := m.Delete(context.Background(), "no-such-id")
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRefetchFailureKeepsLastKnownGood(t *testing.T) {
	repo := newFakeRepo()
	store := usecase.NewStore()
	m := New(repo, store, nil)

	if _, err := m.Create(context.Background(), validExperience()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := store.Snapshot().Experiences

	// The second mutation succeeds but its refetch fails; the store must
	// keep serving the previous snapshot.
	repo.listErr = domain.WrapError(domain.ErrCodeInternal, "db down", nil)
	second := validExperience()
	second.Title = "Monsoon Palace"
	if _, err := m.Create(context.Background(), second); err != nil {
		t.Fatalf("create should succeed even when the refetch fails: %v", err)
	}

	after := store.Snapshot().Experiences
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Fatalf("failed refetch must not disturb the store: %+v", after)
	}
}
